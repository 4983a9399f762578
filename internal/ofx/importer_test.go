package ofx

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/neon-finance/internal/model"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL DEPOSIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>3.21
<FITID>2024012501
<NAME>INTEREST PAYMENT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func testImporter(cardID string) *Importer {
	n := 0
	return &Importer{
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		CardID: cardID,
	}
}

func TestImporter_Parse(t *testing.T) {
	importer := testImporter("")

	transactions, err := importer.Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	coffee := transactions[0]
	assert.Equal(t, "STARBUCKS STORE #1234", coffee.Description)
	assert.Equal(t, 25.50, coffee.Amount)
	assert.Equal(t, model.KindExpense, coffee.Kind)
	assert.Equal(t, model.NewDate(2024, time.January, 15), coffee.Date)
	assert.True(t, coffee.IsPaid)
	assert.Empty(t, coffee.CardID)

	payroll := transactions[1]
	assert.Equal(t, model.KindIncome, payroll.Kind)
	assert.Equal(t, 1500.0, payroll.Amount)

	interest := transactions[2]
	assert.Equal(t, model.KindIncome, interest.Kind)
	assert.Equal(t, "Interest", interest.Category)
}

func TestImporter_ParseLinksCard(t *testing.T) {
	importer := testImporter("card-1")

	transactions, err := importer.Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	for _, tx := range transactions {
		assert.Equal(t, "card-1", tx.CardID)
	}
}

func TestImporter_ParseRejectsGarbage(t *testing.T) {
	importer := testImporter("")
	_, err := importer.Parse(strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestDedupe(t *testing.T) {
	existing := []model.Transaction{
		{ID: "t1", Description: "STARBUCKS STORE #1234", Amount: 25.50,
			Kind: model.KindExpense, Date: model.NewDate(2024, time.January, 15)},
	}
	imported := []model.Transaction{
		// Same date, amount, and description as an existing entry: skipped.
		{ID: "i1", Description: "STARBUCKS STORE #1234", Amount: 25.50,
			Kind: model.KindExpense, Date: model.NewDate(2024, time.January, 15)},
		// Same merchant on a different date: kept.
		{ID: "i2", Description: "STARBUCKS STORE #1234", Amount: 25.50,
			Kind: model.KindExpense, Date: model.NewDate(2024, time.January, 16)},
		// Duplicate within the batch itself: kept once.
		{ID: "i3", Description: "STARBUCKS STORE #1234", Amount: 25.50,
			Kind: model.KindExpense, Date: model.NewDate(2024, time.January, 16)},
	}

	fresh := Dedupe(existing, imported)
	require.Len(t, fresh, 1)
	assert.Equal(t, "i2", fresh[0].ID)
}

func TestPreprocess(t *testing.T) {
	in := "\n\r\n  OFXHEADER:100\n<SEVERITY>Info</SEVERITY>\n<DTSERVER\n"
	out := preprocess(in)

	assert.True(t, strings.HasPrefix(out, "OFXHEADER:100"))
	assert.Contains(t, out, "<SEVERITY>INFO</SEVERITY>")
	assert.Contains(t, out, "<DTSERVER>")
}
