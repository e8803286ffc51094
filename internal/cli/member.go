package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newMemberCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Member management commands",
	}

	cmd.AddCommand(newMemberRegisterCmd(app))
	cmd.AddCommand(newMemberListCmd(app))
	cmd.AddCommand(newMemberGetCmd(app))
	cmd.AddCommand(newMemberUpdateCmd(app))
	cmd.AddCommand(newMemberDeleteCmd(app))
	cmd.AddCommand(newMemberLoginCmd(app))
	cmd.AddCommand(newMemberLogoutCmd(app))

	return cmd
}

func newMemberRegisterCmd(app *cliApp) *cobra.Command {
	var id, name, surname, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new member",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"tc_id":        id,
				"name":         name,
				"surname":      surname,
				"phone_number": phone,
			}
			var result Member

			if err := app.client.Post("/api/v1/members", req, &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "11-digit identity number (required)")
	cmd.Flags().StringVar(&name, "name", "", "First name (required)")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newMemberListCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all members (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MemberList

			if err := app.client.Get("/api/v1/members", &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}
}

func newMemberGetCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "get <identity-number>",
		Short: "Show a member record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Member

			if err := app.client.Get("/api/v1/members/"+args[0], &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}
}

func newMemberUpdateCmd(app *cliApp) *cobra.Command {
	var name, surname, phone string

	cmd := &cobra.Command{
		Use:   "update <identity-number>",
		Short: "Update a member record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":         name,
				"surname":      surname,
				"phone_number": phone,
			}
			var result Member

			if err := app.client.Patch("/api/v1/members/"+args[0], req, &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "First name (required)")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newMemberDeleteCmd(app *cliApp) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <identity-number>",
		Short: "Delete a member record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(fmt.Sprintf("Delete member %s?", args[0])) {
				return nil
			}

			if err := app.client.Delete("/api/v1/members/" + args[0]); err != nil {
				return err
			}

			app.output().PrintMessage("Member deleted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newMemberLoginCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "login <identity-number>",
		Short: "Login as a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"tc_id": args[0]}
			var result Session

			if err := app.client.Post("/api/v1/auth/member/login", req, &result); err != nil {
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
}

func newMemberLogoutCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the member session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := app.client.Post("/api/v1/auth/member/logout", nil, &result); err != nil {
				return err
			}

			app.output().Print(result)
			return nil
		},
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
