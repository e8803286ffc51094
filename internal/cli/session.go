package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin commands",
	}

	cmd.AddCommand(newAdminLoginCmd(app))
	cmd.AddCommand(newAdminLogoutCmd(app))
	cmd.AddCommand(newAdminSetPasswordCmd(app))

	return cmd
}

func newAdminLoginCmd(app *cliApp) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login as admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"password": password}
			var result Session

			if err := app.client.Post("/api/v1/auth/admin/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := app.cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			app.output().Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAdminLogoutCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := app.client.Post("/api/v1/auth/admin/logout", nil, &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}
}

func newAdminSetPasswordCmd(app *cliApp) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Change the admin password (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"new_password": password}

			if err := app.client.Put("/api/v1/auth/admin/password", req, nil); err != nil {
				return err
			}

			app.output().PrintMessage("Admin password updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New admin password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSessionCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := app.client.Get("/api/v1/auth/session", &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}
}
