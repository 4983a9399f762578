package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/neon-finance/internal/cli"
	"github.com/joshsymonds/neon-finance/internal/engine"
	"github.com/joshsymonds/neon-finance/internal/ledger"
	"github.com/joshsymonds/neon-finance/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit, settle, and delete ledger transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(payTxCmd(true))
	cmd.AddCommand(payTxCmd(false))
	cmd.AddCommand(importOFXCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		amount   float64
		kind     string
		date     string
		category string
		cardID   string
		paid     bool
		repeat   int
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a transaction",
		Long: `Record an income or expense entry. With --repeat N (N >= 2) the entry
expands into N monthly occurrences sharing one recurrence group; the first
occurrence is the entry itself and later ones start unpaid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			ids := ledger.NewIDSource()
			tx := model.Transaction{
				ID:          ids(),
				Description: args[0],
				Amount:      amount,
				Kind:        model.TransactionKind(kind),
				Date:        when,
				Category:    category,
				CardID:      cardID,
				IsPaid:      paid,
			}

			err = withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.UpsertTransaction(doc, tx, repeat, ids)
			})
			if err != nil {
				return err
			}

			if repeat >= 2 {
				fmt.Printf("Added %d monthly occurrences of %q starting %s\n", repeat, tx.Description, tx.Date)
			} else {
				fmt.Printf("Added %s %q (%s)\n", tx.Kind, tx.Description, tx.ID)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount (required, positive)")
	cmd.Flags().StringVar(&kind, "kind", "expense", "income or expense")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&category, "category", "General", "category label")
	cmd.Flags().StringVar(&cardID, "card", "", "credit card id to charge")
	cmd.Flags().BoolVar(&paid, "paid", false, "mark as already settled")
	cmd.Flags().IntVar(&repeat, "repeat", 0, "repeat monthly for N months (N >= 2)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		month string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(cmd.Context())
			if err != nil {
				return err
			}

			txs := doc.Transactions
			if !all {
				ref, err := parseMonth(month)
				if err != nil {
					return err
				}
				txs = engine.FilterMonth(txs, ref)
			}

			if len(txs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions."))
				return nil
			}

			today := model.Today()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tSTATUS")
			for _, t := range txs {
				amount := money(t.Amount)
				if t.Kind == model.KindIncome {
					amount = cli.IncomeStyle.Render("+" + amount)
				} else {
					amount = cli.ExpenseStyle.Render("-" + amount)
				}

				status := "unpaid"
				switch {
				case t.IsPaid:
					status = "paid"
				case t.OverdueAt(today):
					status = cli.WarningStyle.Render("overdue")
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Date, t.Description, t.Category, amount, status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to list (YYYY-MM, default: current)")
	cmd.Flags().BoolVar(&all, "all", false, "list every transaction regardless of month")
	return cmd
}

func editTxCmd() *cobra.Command {
	var (
		description string
		amount      float64
		date        string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				tx, ok := doc.TransactionByID(args[0])
				if !ok {
					return doc, fmt.Errorf("transaction %s: %w", args[0], ledger.ErrNotFound)
				}

				if cmd.Flags().Changed("description") {
					tx.Description = description
				}
				if cmd.Flags().Changed("amount") {
					tx.Amount = amount
				}
				if cmd.Flags().Changed("date") {
					when, err := model.ParseDate(date)
					if err != nil {
						return doc, err
					}
					tx.Date = when
				}
				if cmd.Flags().Changed("category") {
					tx.Category = category
				}

				return ledger.UpsertTransaction(doc, tx, 0, nil)
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.DeleteTransaction(doc, args[0])
			})
		},
	}
}

func payTxCmd(paid bool) *cobra.Command {
	use, short := "pay <id>", "Mark a transaction as settled"
	if !paid {
		use, short = "unpay <id>", "Mark a transaction as not settled"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.SetTransactionPaid(doc, args[0], paid)
			})
		},
	}
}
