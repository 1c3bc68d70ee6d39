package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pgctl/internal/api"
	"pgctl/internal/format"
	"pgctl/internal/validation"
)

// PaymentsCmd is the admin-guarded rent payment subtree.
func PaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Record and browse rent payments",
	}

	cmd.AddCommand(
		paymentsAddCmd(),
		paymentsListCmd(),
		paymentsHistoryCmd(),
		paymentsMonthlyCmd(),
		paymentsUpdateCmd(),
		paymentsDeleteCmd(),
	)

	return cmd
}

func paymentsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			req := api.CreatePaymentRequest{}
			req.UserID, _ = cmd.Flags().GetString("user")
			req.Amount, _ = cmd.Flags().GetFloat64("amount")
			req.Mode, _ = cmd.Flags().GetString("mode")
			req.PaymentDate, _ = cmd.Flags().GetString("date")
			req.Month, _ = cmd.Flags().GetInt("month")
			req.Year, _ = cmd.Flags().GetInt("year")
			req.RentType, _ = cmd.Flags().GetString("rent-type")
			req.TransactionID, _ = cmd.Flags().GetString("transaction-id")
			req.Note, _ = cmd.Flags().GetString("note")

			if req.PaymentDate == "" {
				req.PaymentDate = now.Format("2006-01-02")
			}
			if req.Year == 0 {
				req.Year = now.Year()
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

			payment, err := env.adminClient().CreatePayment(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to add payment: %w", err)
			}

			fmt.Printf("Recorded %s for %s %d, id %s\n",
				format.Amount(payment.Amount), format.MonthName(payment.Month), payment.Year, payment.ID)
			return nil
		},
	}

	cmd.Flags().String("user", "", "Tenant id")
	cmd.Flags().Float64("amount", 0, "Amount in rupees")
	cmd.Flags().String("mode", "online", "Payment mode (cash or online)")
	cmd.Flags().String("date", "", "Payment date, YYYY-MM-DD (default today)")
	cmd.Flags().Int("month", 0, "Rent month, 1-12")
	cmd.Flags().Int("year", 0, "Rent year (default current)")
	cmd.Flags().String("rent-type", "monthly-rent", "monthly-rent, advance, security or other")
	cmd.Flags().String("transaction-id", "", "UPI/bank transaction id")
	cmd.Flags().String("note", "", "Free-form note")

	return cmd
}

func paymentsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := api.ListPaymentsParams{}
			params.Month, _ = cmd.Flags().GetInt("month")
			params.Year, _ = cmd.Flags().GetInt("year")
			params.Mode, _ = cmd.Flags().GetString("mode")
			params.Page, _ = cmd.Flags().GetInt("page")
			params.Limit, _ = cmd.Flags().GetInt("limit")

			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			list, err := env.adminClient().ListPayments(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to load payments: %w", err)
			}

			printPayments(list.Payments)
			if list.Total > 0 {
				fmt.Printf("\nTotal: %d\n", list.Total)
			}
			return nil
		},
	}

	cmd.Flags().Int("month", 0, "Filter by rent month, 1-12")
	cmd.Flags().Int("year", 0, "Filter by rent year")
	cmd.Flags().String("mode", "", "Filter by mode (cash or online)")
	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")

	return cmd
}

func paymentsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [userID]",
		Short: "Show one tenant's payment history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			history, err := env.adminClient().PaymentsByUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load payment history: %w", err)
			}

			printPayments(history.Payments)
			return nil
		},
	}
}

func paymentsMonthlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Paid/unpaid report for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be 1-12")
			}
			if year == 0 {
				year = time.Now().Year()
			}

			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			report, err := env.adminClient().GetMonthlyReport(cmd.Context(), month, year)
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}

			fmt.Printf("Report for %s %d\n\n", format.MonthName(month), year)

			fmt.Printf("Paid (%d):\n", len(report.Paid))
			printPayments(report.Paid)

			fmt.Printf("\nUnpaid (%d):\n", len(report.Unpaid))
			printUsers(report.Unpaid)
			return nil
		},
	}

	cmd.Flags().Int("month", 0, "Rent month, 1-12")
	cmd.Flags().Int("year", 0, "Rent year (default current)")

	return cmd
}

func paymentsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdatePaymentRequest{}
			req.Amount, _ = cmd.Flags().GetFloat64("amount")
			req.Mode, _ = cmd.Flags().GetString("mode")
			req.PaymentDate, _ = cmd.Flags().GetString("date")
			req.Month, _ = cmd.Flags().GetInt("month")
			req.Year, _ = cmd.Flags().GetInt("year")
			req.RentType, _ = cmd.Flags().GetString("rent-type")
			req.TransactionID, _ = cmd.Flags().GetString("transaction-id")
			req.Note, _ = cmd.Flags().GetString("note")

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

			payment, err := env.adminClient().UpdatePayment(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update payment: %w", err)
			}

			fmt.Printf("Updated payment %s\n", payment.ID)
			return nil
		},
	}

	cmd.Flags().Float64("amount", 0, "Amount in rupees")
	cmd.Flags().String("mode", "", "Payment mode (cash or online)")
	cmd.Flags().String("date", "", "Payment date, YYYY-MM-DD")
	cmd.Flags().Int("month", 0, "Rent month, 1-12")
	cmd.Flags().Int("year", 0, "Rent year")
	cmd.Flags().String("rent-type", "", "monthly-rent, advance, security or other")
	cmd.Flags().String("transaction-id", "", "UPI/bank transaction id")
	cmd.Flags().String("note", "", "Free-form note")

	return cmd
}

func paymentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.requireAdmin(); err != nil {
				return err
			}

			if err := env.adminClient().DeletePayment(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete payment: %w", err)
			}

			fmt.Println("Deleted.")
			return nil
		},
	}
}
