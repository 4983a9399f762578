// Package ofx imports bank and credit card statements in OFX/QFX format,
// converting their entries into ledger transactions.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// Importer parses OFX statements into transactions. NewID supplies ids for
// the created entries; CardID, when set, links every imported entry to that
// credit card.
type Importer struct {
	NewID  func() string
	CardID string
}

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes formatting quirks seen in real-world SGML-style OFX
// exports: stray leading whitespace, mixed-case SEVERITY values, and opening
// tags missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRe.ReplaceAllString(content, "$1>")
}

// Parse reads an OFX document and returns its entries as transactions.
// Statement entries describe settled activity, so every imported transaction
// starts out paid. Credits map to income, debits to expense.
func (p *Importer) Parse(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		for _, entry := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convert(entry))
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		for _, entry := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convert(entry))
		}
	}

	slog.Info("Parsed OFX statement",
		"transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convert maps one OFX entry to a transaction. OFX uses signed amounts,
// negative for debits; the ledger keeps amounts non-negative and carries the
// direction in Kind.
func (p *Importer) convert(entry ofxgo.Transaction) model.Transaction {
	amount, _ := entry.TrnAmt.Float64()
	kind := model.KindIncome
	if amount < 0 {
		amount = -amount
		kind = model.KindExpense
	}

	posted := entry.DtPosted.Time
	return model.Transaction{
		ID:          p.NewID(),
		Description: description(entry),
		Amount:      amount,
		Kind:        kind,
		Date:        model.NewDate(posted.Year(), posted.Month(), posted.Day()),
		Category:    category(entry),
		CardID:      p.CardID,
		IsPaid:      true,
	}
}

// description picks the most useful label an OFX entry offers.
func description(entry ofxgo.Transaction) string {
	if entry.Payee != nil && entry.Payee.Name != "" {
		return strings.TrimSpace(string(entry.Payee.Name))
	}
	name := strings.TrimSpace(string(entry.Name))
	if name == "" {
		name = strings.TrimSpace(string(entry.Memo))
	}
	if name == "" {
		name = "Imported entry"
	}
	return name
}

// category infers a coarse category from the OFX transaction type.
func category(entry ofxgo.Transaction) string {
	switch fmt.Sprintf("%v", entry.TrnType) {
	case "INT":
		return "Interest"
	case "FEE", "SRVCHG":
		return "Bank Fees"
	case "ATM", "CASH":
		return "Cash & ATM"
	default:
		return "Imported"
	}
}

// Dedupe drops imported entries already present in the document, matching on
// date, amount, and description. Re-importing the same statement is a no-op.
func Dedupe(existing, imported []model.Transaction) []model.Transaction {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[dedupeKey(t)] = true
	}

	var fresh []model.Transaction
	for _, t := range imported {
		key := dedupeKey(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, t)
	}
	return fresh
}

func dedupeKey(t model.Transaction) string {
	return fmt.Sprintf("%s:%.2f:%s:%s", t.Date.Key(), t.Amount, t.Kind, t.Description)
}
