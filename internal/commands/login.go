package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pgctl/internal/api"
	"pgctl/internal/auth"
	"pgctl/internal/session"
	"pgctl/internal/validation"
)

func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the PG admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			creds := validation.AdminCredentials{Email: email, Password: password}
			if err := validation.ValidateStruct(creds); err != nil {
				return fmt.Errorf("%s", validation.Describe(err))
			}

			env, err := newEnv()
			if err != nil {
				return err
			}

			manager := auth.NewManager(session.RoleAdmin, env.Store, env.adminClient())
			sess, err := manager.Login(cmd.Context(), api.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Printf("Logged in as %s\n", sess.Identity.Name)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Admin email")
	cmd.Flags().String("password", "", "Admin password")

	return cmd
}

func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out the admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			manager := auth.NewManager(session.RoleAdmin, env.Store, env.adminClient())
			if err := manager.Logout(); err != nil {
				return err
			}

			fmt.Println("Logged out.")
			return nil
		},
	}
}
