package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/neon-finance/internal/cli"
	"github.com/joshsymonds/neon-finance/internal/engine"
	"github.com/joshsymonds/neon-finance/internal/model"
)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the month's totals, categories, and cash flow",
		Long: `Display income, expenses, and balance for one calendar month, the
expense breakdown by category, the daily cash-flow series, and the standing
overdue alert (which always counts the whole history, not just the shown
month).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseMonth(month)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd.Context())
			if err != nil {
				return err
			}

			today := model.Today()
			scoped := engine.FilterMonth(doc.Transactions, ref)
			summary := engine.ComputeMonthSummary(scoped, doc.Transactions, today)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Summary for %s %d", ref.Month, ref.Year)))

			fmt.Printf("  Income:  %s\n", cli.IncomeStyle.Render(money(summary.Income)))
			fmt.Printf("  Expense: %s\n", cli.ExpenseStyle.Render(money(summary.Expense)))
			balance := money(summary.Balance)
			if summary.Balance < 0 {
				balance = cli.WarningStyle.Render(balance)
			} else {
				balance = cli.BoldStyle.Render(balance)
			}
			fmt.Printf("  Balance: %s\n", balance)

			if summary.OverdueCount > 0 {
				fmt.Println()
				fmt.Println(cli.WarningStyle.Render(
					fmt.Sprintf("⚠ %d overdue bill(s) across all months", summary.OverdueCount)))
			}

			if len(summary.Categories) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Expenses by category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, c := range summary.Categories {
					fmt.Fprintf(w, "  %s\t%s\n", c.Category, money(c.Total))
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			if len(summary.DailyFlow) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Daily flow"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, p := range summary.DailyFlow {
					amount := money(p.Amount)
					if p.Amount >= 0 {
						amount = cli.IncomeStyle.Render("+" + amount)
					} else {
						amount = cli.ExpenseStyle.Render(amount)
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Date, amount, cli.SubtleStyle.Render(p.Description))
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default: current)")
	return cmd
}
