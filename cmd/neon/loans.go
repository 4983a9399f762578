package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/neon-finance/internal/cli"
	"github.com/joshsymonds/neon-finance/internal/ledger"
	"github.com/joshsymonds/neon-finance/internal/model"
)

func loansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage installment loans",
		Long: `Add, list, and delete installment loans. Creating a loan generates its
full installment schedule as expense transactions in the same operation.
Editing a loan afterwards never rewrites that schedule.`,
	}

	cmd.AddCommand(addLoanCmd())
	cmd.AddCommand(listLoansCmd())
	cmd.AddCommand(deleteLoanCmd())

	return cmd
}

func addLoanCmd() *cobra.Command {
	var (
		total        float64
		start        string
		end          string
		payment      float64
		installments int
		paid         int
		lastValue    float64
		imageURL     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a loan and generate its installment schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDateFlag(start)
			if err != nil {
				return err
			}

			endDate := startDate.AddMonths(installments - 1)
			if end != "" {
				endDate, err = model.ParseDate(end)
				if err != nil {
					return err
				}
			}

			loan := model.Loan{
				ID:                ledger.NewIDSource()(),
				Name:              args[0],
				TotalValue:        total,
				StartDate:         startDate,
				EndDate:           endDate,
				MonthlyPayment:    payment,
				PaidInstallments:  paid,
				TotalInstallments: installments,
				ImageURL:          imageURL,
			}
			if cmd.Flags().Changed("last-value") {
				loan.LastInstallmentValue = &lastValue
			}

			err = withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.UpsertLoan(doc, loan, ledger.NewIDSource())
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added loan %q with %d installments of %s starting %s\n",
				loan.Name, loan.TotalInstallments, money(loan.MonthlyPayment), loan.StartDate)
			return nil
		},
	}

	cmd.Flags().Float64Var(&total, "total", 0, "total contract value")
	cmd.Flags().StringVar(&start, "start", "", "first installment date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&end, "end", "", "target end date (default: start + installments)")
	cmd.Flags().Float64Var(&payment, "payment", 0, "monthly payment (required, positive)")
	cmd.Flags().IntVar(&installments, "installments", 0, "number of installments (required, >= 1)")
	cmd.Flags().IntVar(&paid, "paid", 0, "installments already paid at creation")
	cmd.Flags().Float64Var(&lastValue, "last-value", 0, "override amount for the final installment")
	cmd.Flags().StringVar(&imageURL, "image", "", "display image URL")
	_ = cmd.MarkFlagRequired("payment")
	_ = cmd.MarkFlagRequired("installments")

	return cmd
}

func listLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List loans with amortization progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(cmd.Context())
			if err != nil {
				return err
			}

			if len(doc.Loans) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No loans. Use 'neon loans add' to create one."))
				return nil
			}

			for _, loan := range doc.Loans {
				// Progress comes from the generated schedule, not the
				// count supplied at creation, so settling installments
				// moves the bar.
				var paidCount, remaining float64
				linked := doc.LoanTransactions(loan.ID)
				for _, t := range linked {
					if t.IsPaid {
						paidCount++
					} else {
						remaining += t.Amount
					}
				}

				percent := 0.0
				if len(linked) > 0 {
					percent = paidCount / float64(len(linked)) * 100
				}

				fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s (%s)", loan.Name, loan.ID)))
				fmt.Printf("  Progress:  %.0f/%d installments (%.0f%%)\n", paidCount, len(linked), percent)
				fmt.Printf("  Remaining: %s of %s\n", cli.ExpenseStyle.Render(money(remaining)), money(loan.TotalValue))
				fmt.Printf("  Payment:   %s/month until %s\n\n", money(loan.MonthlyPayment), loan.EndDate)
			}
			return nil
		},
	}
}

func deleteLoanCmd() *cobra.Command {
	var (
		cascade bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a loan",
		Long: `Delete a loan. With --cascade its generated installment transactions are
deleted too; without it they remain as ordinary expenses. Cascade is
irreversible, so it asks for confirmation unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cascade && !force {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					"Also delete every transaction linked to this loan? This cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Keeping linked transactions; deleting only the loan record.")
					cascade = false
				}
			}

			return withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.DeleteLoan(doc, args[0], cascade)
			})
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "also delete the loan's generated transactions")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the cascade confirmation prompt")
	return cmd
}
