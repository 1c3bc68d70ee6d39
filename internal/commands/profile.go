package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pgctl/internal/api"
	"pgctl/internal/validation"
)

// ProfileCmd manages the admin account and its UPI payment settings.
func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Admin profile and UPI settings",
	}

	cmd.AddCommand(
		profileShowCmd(),
		profileUpdateCmd(),
		profileUpdateUPICmd(),
		profileUploadQRCmd(),
	)

	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			profile, err := env.adminClient().GetProfile(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			fmt.Printf("Name:   %s\n", profile.Name)
			fmt.Printf("Email:  %s\n", profile.Email)
			if profile.UpiID != "" {
				fmt.Printf("UPI ID: %s\n", profile.UpiID)
			} else {
				fmt.Println("UPI ID: not set")
			}
			if profile.UpiQrURL != "" {
				fmt.Printf("QR:     %s\n", profile.UpiQrURL)
			}
			return nil
		},
	}
}

func profileUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the admin name or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateProfileRequest{}
			req.Name, _ = cmd.Flags().GetString("name")
			req.Email, _ = cmd.Flags().GetString("email")
			if req.Name == "" && req.Email == "" {
				return fmt.Errorf("nothing to update, pass --name or --email")
			}

			if err := validation.ValidateStruct(req); err != nil {
				return fmt.Errorf("%s", validation.Describe(err))
			}

			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			profile, err := env.adminClient().UpdateProfile(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}

			fmt.Printf("Updated profile for %s\n", profile.Name)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Admin name")
	cmd.Flags().String("email", "", "Admin email")

	return cmd
}

func profileUpdateUPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-upi",
		Short: "Set the UPI ID tenants pay to",
		RunE: func(cmd *cobra.Command, args []string) error {
			upiID, _ := cmd.Flags().GetString("upi-id")
			upiID = strings.TrimSpace(upiID)
			if upiID == "" {
				return fmt.Errorf("upi-id is required")
			}

			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			if err := env.adminClient().UpdateUPI(cmd.Context(), upiID); err != nil {
				return fmt.Errorf("failed to update UPI ID: %w", err)
			}

			fmt.Printf("UPI ID updated to %s\n", upiID)
			return nil
		},
	}

	cmd.Flags().String("upi-id", "", "UPI ID, e.g. yourname@paytm")

	return cmd
}

func profileUploadQRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-qr [file]",
		Short: "Upload the UPI QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			if err := env.adminClient().UploadQR(cmd.Context(), args[0], f); err != nil {
				return fmt.Errorf("failed to upload QR: %w", err)
			}

			fmt.Println("QR uploaded.")
			return nil
		},
	}
}
