// Package model defines the entities that make up a finance document.
package model

// TransactionKind indicates whether a transaction adds to or subtracts from
// the balance.
type TransactionKind string

const (
	// KindIncome represents money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense represents money going out.
	KindExpense TransactionKind = "expense"
)

// CategoryFinancing is the fixed category assigned to loan installment
// transactions generated at loan creation.
const CategoryFinancing = "Financing"

// Transaction is a single ledger entry. CardID, LoanID and RecurrenceID are
// weak references: an empty string means no association, and a non-empty
// value pointing at a deleted entity is not an error, the transaction is
// simply treated as standalone.
type Transaction struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Amount       float64         `json:"amount"`
	Kind         TransactionKind `json:"kind"`
	Date         Date            `json:"date"`
	Category     string          `json:"category"`
	CardID       string          `json:"cardId,omitempty"`
	LoanID       string          `json:"loanId,omitempty"`
	RecurrenceID string          `json:"recurrenceId,omitempty"`
	IsPaid       bool            `json:"isPaid"`
}

// OnCard reports whether the transaction is charged to the given card.
func (t Transaction) OnCard(cardID string) bool {
	return t.CardID != "" && t.CardID == cardID
}

// FromLoan reports whether the transaction is an installment of the given
// loan.
func (t Transaction) FromLoan(loanID string) bool {
	return t.LoanID != "" && t.LoanID == loanID
}

// OverdueAt reports whether the transaction counts as overdue on the given
// date: an unpaid expense strictly before it.
func (t Transaction) OverdueAt(today Date) bool {
	return t.Kind == KindExpense && !t.IsPaid && t.Date.Before(today)
}
