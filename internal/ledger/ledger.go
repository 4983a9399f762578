// Package ledger applies mutations to a finance document. Every operation
// is a pure transform: it takes the current document by value and returns
// the next one, leaving the input untouched. The caller persists the result
// in a single write, so there is never a partially mutated document on disk.
package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joshsymonds/neon-finance/internal/engine"
	"github.com/joshsymonds/neon-finance/internal/model"
)

// ErrNotFound is returned by delete operations when no entity carries the
// given id.
var ErrNotFound = errors.New("not found")

// IDSource produces ids unique within one document's lifetime. The format
// carries no meaning; only uniqueness matters.
type IDSource func() string

// NewIDSource returns the production id source.
func NewIDSource() IDSource {
	return uuid.NewString
}

// UpsertTransaction saves a transaction: replaced in place when its id
// already exists, appended otherwise. With repeatMonths >= 2 the save
// expands into that many monthly instances instead (see
// engine.ExpandRecurring); expansion is append-only and never rewrites
// unrelated entries.
func UpsertTransaction(doc model.Document, tx model.Transaction, repeatMonths int, newID IDSource) (model.Document, error) {
	if err := validateTransaction(tx); err != nil {
		return doc, err
	}

	next := doc.Clone()
	if repeatMonths >= 2 {
		instances, err := engine.ExpandRecurring(tx, repeatMonths, newID)
		if err != nil {
			return doc, err
		}
		next.Transactions = append(next.Transactions, instances...)
		return next, nil
	}

	next.Transactions = upsertTransactionSlice(next.Transactions, tx)
	return next, nil
}

// DeleteTransaction removes the transaction with the given id.
func DeleteTransaction(doc model.Document, id string) (model.Document, error) {
	if _, ok := doc.TransactionByID(id); !ok {
		return doc, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	next := doc.Clone()
	kept := next.Transactions[:0]
	for _, t := range next.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	next.Transactions = kept
	return next, nil
}

// SetTransactionPaid flips a transaction's settlement flag through the
// ordinary upsert path.
func SetTransactionPaid(doc model.Document, id string, paid bool) (model.Document, error) {
	tx, ok := doc.TransactionByID(id)
	if !ok {
		return doc, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	tx.IsPaid = paid
	return UpsertTransaction(doc, tx, 0, nil)
}

// UpsertCard saves a credit card, replacing in place or appending.
func UpsertCard(doc model.Document, card model.CreditCard) (model.Document, error) {
	if err := validateCard(card); err != nil {
		return doc, err
	}
	next := doc.Clone()
	for i, c := range next.Cards {
		if c.ID == card.ID {
			next.Cards[i] = card
			return next, nil
		}
	}
	next.Cards = append(next.Cards, card)
	return next, nil
}

// DeleteCard removes a card. Transactions referencing it keep their cardId;
// a dangling reference just drops the card association downstream.
func DeleteCard(doc model.Document, id string) (model.Document, error) {
	if _, ok := doc.CardByID(id); !ok {
		return doc, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	next := doc.Clone()
	kept := next.Cards[:0]
	for _, c := range next.Cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	next.Cards = kept
	return next, nil
}

// UpsertLoan saves a loan. Creating a loan also materializes its full
// installment schedule in the same transform, so the loan and its
// transactions are committed together. Updating an existing loan replaces
// only the loan record: previously generated installments are deliberately
// left alone to preserve payment history.
func UpsertLoan(doc model.Document, loan model.Loan, newID IDSource) (model.Document, error) {
	if err := validateLoan(loan); err != nil {
		return doc, err
	}

	next := doc.Clone()
	for i, l := range next.Loans {
		if l.ID == loan.ID {
			next.Loans[i] = loan
			return next, nil
		}
	}

	schedule, err := engine.GenerateLoanSchedule(loan, newID)
	if err != nil {
		return doc, err
	}
	next.Loans = append(next.Loans, loan)
	next.Transactions = append(next.Transactions, schedule...)
	return next, nil
}

// DeleteLoan removes a loan. With cascade, every transaction generated for
// it goes too; without, the installments remain as ordinary standalone
// expenses. Cascade is irreversible, so callers must get explicit
// confirmation before requesting it.
func DeleteLoan(doc model.Document, id string, cascade bool) (model.Document, error) {
	if _, ok := doc.LoanByID(id); !ok {
		return doc, fmt.Errorf("loan %s: %w", id, ErrNotFound)
	}
	next := doc.Clone()

	keptLoans := next.Loans[:0]
	for _, l := range next.Loans {
		if l.ID != id {
			keptLoans = append(keptLoans, l)
		}
	}
	next.Loans = keptLoans

	if cascade {
		keptTxs := next.Transactions[:0]
		for _, t := range next.Transactions {
			if !t.FromLoan(id) {
				keptTxs = append(keptTxs, t)
			}
		}
		next.Transactions = keptTxs
	}
	return next, nil
}

// UpsertInvestment saves an investment, replacing in place or appending.
func UpsertInvestment(doc model.Document, inv model.Investment) (model.Document, error) {
	if err := validateInvestment(inv); err != nil {
		return doc, err
	}
	next := doc.Clone()
	for i, existing := range next.Investments {
		if existing.ID == inv.ID {
			next.Investments[i] = inv
			return next, nil
		}
	}
	next.Investments = append(next.Investments, inv)
	return next, nil
}

// DeleteInvestment removes an investment.
func DeleteInvestment(doc model.Document, id string) (model.Document, error) {
	if _, ok := doc.InvestmentByID(id); !ok {
		return doc, fmt.Errorf("investment %s: %w", id, ErrNotFound)
	}
	next := doc.Clone()
	kept := next.Investments[:0]
	for _, inv := range next.Investments {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	next.Investments = kept
	return next, nil
}

func upsertTransactionSlice(txs []model.Transaction, tx model.Transaction) []model.Transaction {
	for i, existing := range txs {
		if existing.ID == tx.ID {
			txs[i] = tx
			return txs
		}
	}
	return append(txs, tx)
}
