package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/neon-finance/internal/cli"
	"github.com/joshsymonds/neon-finance/internal/engine"
	"github.com/joshsymonds/neon-finance/internal/ledger"
	"github.com/joshsymonds/neon-finance/internal/model"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage credit cards",
		Long:  `Add, list, and delete credit cards. Listing shows each card's open invoice, available limit, and next due date.`,
	}

	cmd.AddCommand(addCardCmd())
	cmd.AddCommand(listCardsCmd())
	cmd.AddCommand(deleteCardCmd())

	return cmd
}

func addCardCmd() *cobra.Command {
	var (
		limit      float64
		closingDay int
		dueDay     int
		color      string
		brand      string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a credit card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card := model.CreditCard{
				ID:         ledger.NewIDSource()(),
				Name:       args[0],
				Limit:      limit,
				ClosingDay: closingDay,
				DueDay:     dueDay,
				Color:      color,
				BrandName:  brand,
			}
			if card.BrandName == "" {
				card.BrandName = card.Name
			}

			err := withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.UpsertCard(doc, card)
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added card %q (%s)\n", card.Name, card.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit (required, positive)")
	cmd.Flags().IntVar(&closingDay, "closing-day", 1, "invoice closing day of month (1-31)")
	cmd.Flags().IntVar(&dueDay, "due-day", 10, "payment due day of month (1-31)")
	cmd.Flags().StringVar(&color, "color", "#22D3EE", "display color")
	cmd.Flags().StringVar(&brand, "brand", "", "brand name (default: card name)")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func listCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cards with their invoice metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(cmd.Context())
			if err != nil {
				return err
			}

			if len(doc.Cards) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No cards. Use 'neon cards add' to create one."))
				return nil
			}

			today := model.Today()
			for _, card := range doc.Cards {
				metrics := engine.ComputeCardMetrics(card, doc.Transactions, today)

				// Negative available limit means the card is over
				// its limit; show zero but flag it.
				available := metrics.AvailableLimit
				over := available < 0
				if over {
					available = 0
				}

				fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s (%s)", card.Name, card.ID)))
				fmt.Printf("  Current invoice: %s  (closes %s)\n",
					cli.ExpenseStyle.Render(money(metrics.CurrentInvoiceTotal)), metrics.ClosingDate)
				fmt.Printf("  Available limit: %s of %s\n",
					cli.IncomeStyle.Render(money(available)), money(card.Limit))
				if over {
					fmt.Println("  " + cli.WarningStyle.Render(
						fmt.Sprintf("Over limit by %s", money(-metrics.AvailableLimit))))
				}
				fmt.Printf("  Next due date:   %s\n\n", cli.BoldStyle.Render(metrics.NextDueDate.String()))
			}
			return nil
		},
	}
}

func deleteCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card",
		Long:  `Delete a credit card. Transactions charged to it are kept and become ordinary entries.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.DeleteCard(doc, args[0])
			})
		},
	}
}
