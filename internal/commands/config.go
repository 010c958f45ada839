package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"policyadvisor/internal/config"
	"policyadvisor/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the resolved configuration and where it is loaded from.

The configuration is layered: built-in defaults, then the config file,
then environment variables (ADVISOR_ENDPOINT, ADVISOR_THEME,
ADVISOR_VERBOSE).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

var configThemeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "List available TUI themes or set the active one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range render.TUIThemeNames() {
				fmt.Println(name)
			}
			return nil
		}

		name := args[0]
		if _, ok := render.GetTUIThemeByName(name); !ok {
			return fmt.Errorf("unknown theme: %s", name)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		cfg.TUITheme = name
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", name)
		return nil
	},
}

func showConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	cfg := loadConfig()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("Config file: %s\n\n%s\n", path, data)
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configThemeCmd)
}
