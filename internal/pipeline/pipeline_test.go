package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/parsererror"
)

const dkbUpload = `"Kontostand vom 15.12.2023:";"1.250,75 EUR"
""
""
""
Buchungsdatum;Wertstellung;Zahlungsempfänger*in;Zahlungspflichtige*r;Verwendungszweck;Betrag (€);IBAN;Gläubiger-ID
15.12.2023;15.12.2023;REWE sagt Danke;;Einkauf;-25,50;DE22;
01.12.2023;01.12.2023;Vermieter Meyer;;Miete Dezember;-850,00;DE11;DE123
30.11.2023;30.11.2023;Arbeitgeber GmbH;;Gehalt November;2.400,00;DE33;
01.11.2023;01.11.2023;Vermieter Meyer;;Miete November;-850,00;DE11;DE123
01.10.2023;01.10.2023;Vermieter Meyer;;Miete Oktober;-850,00;DE11;DE123
`

func newPipeline() *Pipeline {
	return New(nil, nil, logging.NewMockLogger())
}

func TestProcessDKBUpload(t *testing.T) {
	result, err := newPipeline().Process([]byte(dkbUpload))
	require.NoError(t, err)

	assert.Equal(t, "DKB", result.BankName)
	assert.Equal(t, 5, result.Count)
	require.Len(t, result.Transactions, 5)

	// Output is sorted by booking date descending.
	assert.Equal(t, "2023-12-15", result.Transactions[0].BookingDate)
	assert.Equal(t, "2023-10-01", result.Transactions[4].BookingDate)

	var rent, salary, groceries *models.Transaction
	for i := range result.Transactions {
		tx := &result.Transactions[i]
		switch tx.Purpose {
		case "Miete Dezember":
			rent = tx
		case "Gehalt November":
			salary = tx
		case "Einkauf":
			groceries = tx
		}
	}
	require.NotNil(t, rent)
	require.NotNil(t, salary)
	require.NotNil(t, groceries)

	// The rent is monthly, keyword-matched and plausible.
	assert.True(t, rent.IsRecurring)
	assert.Equal(t, models.FixedCostHousing, rent.FixedCostGroup)
	assert.True(t, rent.IsFixedCost)
	assert.Equal(t, models.CategoryHousing, rent.Category)

	// Salary is excluded from fixed costs but still categorized as income.
	assert.Equal(t, models.FixedCostNone, salary.FixedCostGroup)
	assert.Equal(t, 0.0, salary.Confidence)
	assert.False(t, salary.IsFixedCost)
	assert.Equal(t, models.CategoryIncome, salary.Category)

	// One-off groceries carry no fixed-cost signal.
	assert.False(t, groceries.IsRecurring)
	assert.False(t, groceries.IsFixedCost)
	assert.Equal(t, models.CategoryGroceries, groceries.Category)
}

func TestProcessBalanceHistory(t *testing.T) {
	result, err := newPipeline().Process([]byte(dkbUpload))
	require.NoError(t, err)

	require.True(t, result.Metadata.HasBalance())
	require.Len(t, result.BalanceHistory, 5)

	// Ascending by date, anchored at the newest transaction.
	assert.Equal(t, "2023-10-01", result.BalanceHistory[0].Date)
	last := result.BalanceHistory[len(result.BalanceHistory)-1]
	assert.Equal(t, "2023-12-15", last.Date)
	assert.True(t, decimal.NewFromFloat(1250.75).Equal(last.Balance))

	// Every transaction got a balance annotation.
	for _, tx := range result.Transactions {
		assert.NotNil(t, tx.BalanceAfter)
	}
}

func TestProcessMetrics(t *testing.T) {
	result, err := newPipeline().Process([]byte(dkbUpload))
	require.NoError(t, err)

	metrics := result.Metrics
	require.Empty(t, metrics.Error)
	assert.True(t, decimal.NewFromInt(2400).Equal(metrics.Income))
	// Needs: three rent payments of 850.
	assert.True(t, decimal.NewFromInt(2550).Equal(metrics.Needs.Amount))
	// Wants: the groceries.
	assert.True(t, decimal.NewFromFloat(25.5).Equal(metrics.Wants.Amount))
}

func TestProcessSparkasseUpload(t *testing.T) {
	upload := `Auftragskonto;Buchungstag;Begünstigter/Zahlungspflichtiger;Verwendungszweck;Betrag;Kontonummer/IBAN
DE44;01.10.2023;Vermieter Meyer;Miete Oktober;-850,00;DE11
DE44;15.12.2023;Amazon;Bestellung 1;-25,50;DE22
`
	result, err := newPipeline().Process([]byte(upload))
	require.NoError(t, err)

	assert.Equal(t, "Sparkasse", result.BankName)
	assert.Equal(t, 2, result.Count)
	assert.False(t, result.Metadata.HasBalance())
	assert.Empty(t, result.BalanceHistory)

	amazon := result.Transactions[0]
	assert.Equal(t, models.CategoryAmazon, amazon.Category)
}

func TestProcessUnrecognizedFormat(t *testing.T) {
	_, err := newPipeline().Process([]byte("Invalid;Header\nData;Row\n"))
	require.Error(t, err)
	var formatErr *parsererror.UnrecognizedFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestProcessCP1252Upload(t *testing.T) {
	// Header with cp1252-encoded umlaut in "Begünstigter" and euro-less
	// Sparkasse columns still detects and parses.
	raw := []byte("Buchungstag;Beg\xfcnstigter;Verwendungszweck;Betrag\n01.10.2023;Netflix;Abo;-12,99\n")
	result, err := newPipeline().Process(raw)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Netflix", result.Transactions[0].Recipient)
}
