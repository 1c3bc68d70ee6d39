package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pgctl/internal/api"
	"pgctl/internal/auth"
	"pgctl/internal/session"
	"pgctl/internal/validation"
)

// UserCmd is the tenant-facing command subtree: log in with a phone number
// and view your own payment history and the admin's UPI details.
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Tenant account commands",
	}

	cmd.AddCommand(
		userLoginCmd(),
		userLogoutCmd(),
		userDashboardCmd(),
		userQRCmd(),
	)

	return cmd
}

func userLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, _ := cmd.Flags().GetString("phone")
			password, _ := cmd.Flags().GetString("password")

			creds := validation.TenantCredentials{Phone: phone, Password: password}
			if err := validation.ValidateStruct(creds); err != nil {
				return fmt.Errorf("%s", validation.Describe(err))
			}

			env, err := newEnv()
			if err != nil {
				return err
			}

			manager := auth.NewManager(session.RoleTenant, env.Store, env.tenantClient())
			sess, err := manager.Login(cmd.Context(), api.LoginRequest{
				Phone:    phone,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Printf("Logged in as %s (room %s)\n", sess.Identity.Name, sess.Identity.RoomNo)
			return nil
		},
	}

	cmd.Flags().String("phone", "", "10 digit phone number")
	cmd.Flags().String("password", "", "Password")

	return cmd
}

func userLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out the tenant session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			manager := auth.NewManager(session.RoleTenant, env.Store, env.tenantClient())
			if err := manager.Logout(); err != nil {
				return err
			}

			fmt.Println("Logged out.")
			return nil
		},
	}
}

func userDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your payment history and the admin's UPI details",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			sess, err := env.requireTenant()
			if err != nil {
				return err
			}

			client := env.tenantClient()

			upi, err := client.GetUPIInfo(cmd.Context())
			if err != nil {
				return tenantErr(err)
			}
			history, err := client.GetPaymentHistory(cmd.Context())
			if err != nil {
				return tenantErr(err)
			}

			fmt.Printf("Welcome, %s (room %s)\n\n", sess.Identity.Name, sess.Identity.RoomNo)

			fmt.Println("Pay rent to:")
			if upi.UpiID == "" {
				fmt.Println("  UPI ID not set yet")
			} else {
				fmt.Printf("  UPI ID: %s", upi.UpiID)
				if upi.AdminName != "" {
					fmt.Printf(" (%s)", upi.AdminName)
				}
				fmt.Println()
			}
			if upi.UpiQrURL != "" {
				fmt.Println("  QR available, download with 'pgctl user qr'")
			}

			fmt.Println("\nYour payments:")
			printPayments(history.Payments)
			return nil
		},
	}
}

func userQRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Download the admin's UPI QR code image",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			env, err := newEnv()
			if err != nil {
				return err
			}

			if _, err := env.requireTenant(); err != nil {
				return err
			}

			client := env.tenantClient()
			upi, err := client.GetUPIInfo(cmd.Context())
			if err != nil {
				return tenantErr(err)
			}
			if upi.UpiQrURL == "" {
				return fmt.Errorf("the admin has not uploaded a QR code yet")
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := client.FetchFile(cmd.Context(), upi.UpiQrURL, f); err != nil {
				return fmt.Errorf("failed to download QR code: %w", err)
			}

			fmt.Printf("Saved QR code to %s\n", output)
			return nil
		},
	}

	cmd.Flags().String("output", "upi-qr.png", "Where to save the QR image")

	return cmd
}
