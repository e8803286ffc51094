package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the registry server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := app.client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}
}
