package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"pgctl/internal/api"
	"pgctl/internal/validation"
)

// Unambiguous alphabet: no 0/O, 1/l/I pairs, so a generated password
// survives being read out over the phone.
const passwordChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

func generatePassword() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = passwordChars[rand.Intn(len(passwordChars))]
	}
	return string(b)
}

// UsersCmd is the admin-guarded tenant management subtree.
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage tenants",
	}

	cmd.AddCommand(
		usersListCmd(),
		usersGetCmd(),
		usersAddCmd(),
		usersUpdateCmd(),
		usersDeleteCmd(),
	)

	return cmd
}

func usersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			list, err := env.adminClient().ListUsers(cmd.Context(), api.ListUsersParams{
				Search: search,
				Page:   page,
				Limit:  limit,
			})
			if err != nil {
				return fmt.Errorf("failed to load users: %w", err)
			}

			printUsers(list.Users)
			if list.Total > 0 {
				fmt.Printf("\nTotal: %d\n", list.Total)
			}
			return nil
		},
	}

	cmd.Flags().String("search", "", "Filter by name, phone or room")
	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")

	return cmd
}

func usersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			user, err := env.adminClient().GetUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load user: %w", err)
			}

			fmt.Printf("Name:    %s\n", user.Name)
			fmt.Printf("Phone:   %s\n", user.Phone)
			fmt.Printf("Room:    %s\n", user.RoomNo)
			if user.Aadhar != "" {
				fmt.Printf("Aadhar:  %s\n", user.Aadhar)
			}
			if user.Address != "" {
				fmt.Printf("Address: %s\n", user.Address)
			}
			return nil
		},
	}
}

func usersAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.CreateUserRequest{}
			req.Name, _ = cmd.Flags().GetString("name")
			req.Phone, _ = cmd.Flags().GetString("phone")
			req.RoomNo, _ = cmd.Flags().GetString("room")
			req.Aadhar, _ = cmd.Flags().GetString("aadhar")
			req.Address, _ = cmd.Flags().GetString("address")
			req.Password, _ = cmd.Flags().GetString("password")

			generate, _ := cmd.Flags().GetBool("generate-password")
			generated := generate && req.Password == ""
			if generated {
				req.Password = generatePassword()
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

			user, err := env.adminClient().CreateUser(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to add user: %w", err)
			}

			fmt.Printf("Added %s (room %s), id %s\n", user.Name, user.RoomNo, user.ID)
			if generated {
				fmt.Printf("Generated password: %s\n", req.Password)
			}
			return nil
		},
	}

	cmd.Flags().String("name", "", "Tenant name")
	cmd.Flags().String("phone", "", "10 digit phone number")
	cmd.Flags().String("room", "", "Room number")
	cmd.Flags().String("aadhar", "", "Aadhar number")
	cmd.Flags().String("address", "", "Home address")
	cmd.Flags().String("password", "", "Login password")
	cmd.Flags().Bool("generate-password", false, "Generate an 8 character password")

	return cmd
}

func usersUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateUserRequest{}
			req.Name, _ = cmd.Flags().GetString("name")
			req.Phone, _ = cmd.Flags().GetString("phone")
			req.RoomNo, _ = cmd.Flags().GetString("room")
			req.Aadhar, _ = cmd.Flags().GetString("aadhar")
			req.Address, _ = cmd.Flags().GetString("address")
			req.Password, _ = cmd.Flags().GetString("password")

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

			user, err := env.adminClient().UpdateUser(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			fmt.Printf("Updated %s\n", user.Name)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Tenant name")
	cmd.Flags().String("phone", "", "10 digit phone number")
	cmd.Flags().String("room", "", "Room number")
	cmd.Flags().String("aadhar", "", "Aadhar number")
	cmd.Flags().String("address", "", "Home address")
	cmd.Flags().String("password", "", "New login password")

	return cmd
}

func usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			if err := env.adminClient().DeleteUser(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Println("Deleted.")
			return nil
		},
	}
}
