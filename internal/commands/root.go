// Package commands provides the CLI commands for the advisor client.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"policyadvisor/internal/config"
)

var (
	// Global flags
	endpointFlag string
	outputFlag   string
	fileFlag     string
	rawFlag      bool
	verboseFlag  bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advisor [question]",
	Short: "Terminal client for the InfoSec Policy Advisor",
	Long: `advisor is a terminal client for the InfoSec Policy Advisor service.
It sends your question to the advisor endpoint and renders the answer,
labelling it with its source (company policy or ISO/NIST standards)
when the service provides one.

Examples:
  advisor chat                          Start interactive chat
  advisor "How do I secure my account?" Ask a single question
  advisor -f question.txt               Read question from file
  echo "What is 2FA?" | advisor         Read question from stdin
  advisor "password rules?" -o out.md   Save answer to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("advisor %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Advisor endpoint URL")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log request details to the advisor log file")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the raw answer without decoration")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the user configuration with flag overrides applied
func loadConfig() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	return cfg
}
