package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// cliApp owns the configuration and the API client shared by the command
// tree. Each root command gets its own instance; nothing lives at package
// level.
type cliApp struct {
	cfg    *Config
	client *Client
}

func (a *cliApp) output() *Output {
	return NewOutput(a.cfg.Output)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	app := &cliApp{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "memberctl",
		Short: "CLI tool for the member registry API",
		Long: `memberctl is a CLI tool for interacting with the member registry JSON API.

It supports member registration and management, admin and member login,
and admin password changes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load token from file if not provided via flag/env
			if err := app.cfg.LoadToken(); err != nil {
				return err
			}

			// Create HTTP client
			app.client = NewClient(app.cfg.ServerURL, app.cfg.Token)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&app.cfg.ServerURL, "server", app.cfg.ServerURL, "Server URL (env: MEMBERCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&app.cfg.Token, "token", app.cfg.Token, "Session token (env: MEMBERCTL_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&app.cfg.TokenFile, "token-file", app.cfg.TokenFile, "Token file path (env: MEMBERCTL_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&app.cfg.Output, "output", "o", app.cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&app.cfg.Verbose, "verbose", "v", app.cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newMemberCmd(app))
	rootCmd.AddCommand(newAdminCmd(app))
	rootCmd.AddCommand(newSessionCmd(app))
	rootCmd.AddCommand(newHealthCmd(app))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
