package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/neon-finance/internal/cli"
	"github.com/joshsymonds/neon-finance/internal/ledger"
	"github.com/joshsymonds/neon-finance/internal/model"
)

func investCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Manage investments",
	}

	cmd.AddCommand(addInvestCmd())
	cmd.AddCommand(listInvestCmd())
	cmd.AddCommand(deleteInvestCmd())

	return cmd
}

func addInvestCmd() *cobra.Command {
	var (
		investType string
		invested   float64
		current    float64
		date       string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an investment position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			if current == 0 {
				current = invested
			}
			inv := model.Investment{
				ID:             ledger.NewIDSource()(),
				Name:           args[0],
				Type:           investType,
				AmountInvested: invested,
				CurrentValue:   current,
				Date:           when,
			}

			err = withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.UpsertInvestment(doc, inv)
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added investment %q (%s)\n", inv.Name, inv.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&investType, "type", "Fixed Income", "position type label")
	cmd.Flags().Float64Var(&invested, "invested", 0, "amount invested (required)")
	cmd.Flags().Float64Var(&current, "current", 0, "current value (default: invested amount)")
	cmd.Flags().StringVar(&date, "date", "", "contribution date (YYYY-MM-DD, default: today)")
	_ = cmd.MarkFlagRequired("invested")

	return cmd
}

func listInvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List investments with returns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(cmd.Context())
			if err != nil {
				return err
			}

			if len(doc.Investments) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No investments."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tINVESTED\tCURRENT\tRETURN")
			for _, inv := range doc.Investments {
				gain := inv.Gain()
				percent := 0.0
				if inv.AmountInvested > 0 {
					percent = gain / inv.AmountInvested * 100
				}

				ret := fmt.Sprintf("%s (%.1f%%)", money(gain), percent)
				if gain >= 0 {
					ret = cli.IncomeStyle.Render("+" + ret)
				} else {
					ret = cli.WarningStyle.Render(ret)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.ID, inv.Name, inv.Type, money(inv.AmountInvested), money(inv.CurrentValue), ret)
			}
			return w.Flush()
		},
	}
}

func deleteInvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an investment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				return ledger.DeleteInvestment(doc, args[0])
			})
		},
	}
}
