package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pgctl/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "pgctl",
		Short: "Hostel/PG management client",
	}

	rootCmd.AddCommand(
		commands.LoginCmd(),
		commands.LogoutCmd(),
		commands.UserCmd(),
		commands.DashboardCmd(),
		commands.ProfileCmd(),
		commands.UsersCmd(),
		commands.PaymentsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
