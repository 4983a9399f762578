package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/joshsymonds/neon-finance/internal/ledger"
	"github.com/joshsymonds/neon-finance/internal/model"
	"github.com/joshsymonds/neon-finance/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var cardID string

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX statement",
		Long: `Parse a bank or credit card statement and append its entries as
transactions. Entries already in the document (same date, amount, and
description) are skipped, so re-importing a statement is safe. Imported
entries are marked paid; with --card they are linked to that credit card.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer file.Close()

			importer := &ofx.Importer{NewID: ledger.NewIDSource(), CardID: cardID}
			parsed, err := importer.Parse(file)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				fmt.Println("Statement contains no transactions.")
				return nil
			}

			var imported int
			err = withDocument(cmd.Context(), func(doc model.Document) (model.Document, error) {
				if cardID != "" {
					if _, ok := doc.CardByID(cardID); !ok {
						return doc, fmt.Errorf("card %s: %w", cardID, ledger.ErrNotFound)
					}
				}

				fresh := ofx.Dedupe(doc.Transactions, parsed)
				if len(fresh) == 0 {
					return doc, nil
				}

				bar := progressbar.NewOptions(len(fresh),
					progressbar.OptionSetDescription("Importing transactions..."),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWidth(40))

				next := doc
				for _, tx := range fresh {
					var upsertErr error
					next, upsertErr = ledger.UpsertTransaction(next, tx, 0, nil)
					if upsertErr != nil {
						return doc, upsertErr
					}
					_ = bar.Add(1)
				}
				imported = len(fresh)
				return next, nil
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nImported %d new transaction(s), skipped %d duplicate(s)\n",
				imported, len(parsed)-imported)
			return nil
		},
	}

	cmd.Flags().StringVar(&cardID, "card", "", "credit card id to link imported entries to")
	return cmd
}
