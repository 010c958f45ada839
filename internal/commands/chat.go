package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"policyadvisor/internal/api"
	"policyadvisor/internal/logging"
	"policyadvisor/internal/render"
	"policyadvisor/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the policy advisor.

Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg := loadConfig()

	if cfg.TUITheme != "" {
		if render.SetTUITheme(cfg.TUITheme) {
			tui.UpdateTheme()
		}
	}

	logger, err := logging.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	client := api.NewClient(
		api.WithEndpoint(cfg.Endpoint),
		api.WithLogger(logger),
	)

	return tui.RunChat(client)
}
