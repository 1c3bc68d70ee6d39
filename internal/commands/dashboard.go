package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pgctl/internal/api"
)

// DashboardCmd prints the month-at-a-glance overview: tenant count, how many
// have paid this month, and the latest recorded payments.
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "PG operations overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			client := env.adminClient()

			users, err := client.ListUsers(cmd.Context(), api.ListUsersParams{})
			if err != nil {
				return fmt.Errorf("failed to load users: %w", err)
			}
			payments, err := client.ListPayments(cmd.Context(), api.ListPaymentsParams{Limit: 10})
			if err != nil {
				return fmt.Errorf("failed to load payments: %w", err)
			}

			totalUsers := users.Total
			if totalUsers == 0 {
				totalUsers = len(users.Users)
			}

			now := time.Now()
			paid := 0
			for _, p := range payments.Payments {
				if p.Month == int(now.Month()) && p.Year == now.Year() {
					paid++
				}
			}
			unpaid := totalUsers - paid
			if unpaid < 0 {
				unpaid = 0
			}

			fmt.Printf("Total users:       %d\n", totalUsers)
			fmt.Printf("Paid this month:   %d\n", paid)
			fmt.Printf("Unpaid this month: %d\n", unpaid)

			fmt.Println("\nLatest payments:")
			printPayments(payments.Payments)
			return nil
		},
	}
}
