package model

// Document is the aggregate root: everything the application knows, loaded
// and persisted as one unit. Collections keep insertion order; id uniqueness
// is enforced by the mutation layer, not by the container.
type Document struct {
	Transactions []Transaction `json:"transactions"`
	Cards        []CreditCard  `json:"cards"`
	Loans        []Loan        `json:"loans"`
	Investments  []Investment  `json:"investments"`
}

// Clone returns a deep-enough copy of the document: fresh top-level slices
// whose elements can be replaced without touching the receiver. Entity
// structs are value types, so copying the slices is sufficient.
func (d Document) Clone() Document {
	out := Document{
		Transactions: make([]Transaction, len(d.Transactions)),
		Cards:        make([]CreditCard, len(d.Cards)),
		Loans:        make([]Loan, len(d.Loans)),
		Investments:  make([]Investment, len(d.Investments)),
	}
	copy(out.Transactions, d.Transactions)
	copy(out.Cards, d.Cards)
	copy(out.Loans, d.Loans)
	copy(out.Investments, d.Investments)
	return out
}

// TransactionByID looks up a transaction by id.
func (d Document) TransactionByID(id string) (Transaction, bool) {
	for _, t := range d.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// CardByID looks up a card by id.
func (d Document) CardByID(id string) (CreditCard, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return CreditCard{}, false
}

// LoanByID looks up a loan by id.
func (d Document) LoanByID(id string) (Loan, bool) {
	for _, l := range d.Loans {
		if l.ID == id {
			return l, true
		}
	}
	return Loan{}, false
}

// InvestmentByID looks up an investment by id.
func (d Document) InvestmentByID(id string) (Investment, bool) {
	for _, inv := range d.Investments {
		if inv.ID == id {
			return inv, true
		}
	}
	return Investment{}, false
}

// LoanTransactions returns the transactions generated for the given loan, in
// document order.
func (d Document) LoanTransactions(loanID string) []Transaction {
	var out []Transaction
	for _, t := range d.Transactions {
		if t.FromLoan(loanID) {
			out = append(out, t)
		}
	}
	return out
}
