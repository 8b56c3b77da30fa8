package bankparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbeck/finance-analyzer/internal/logging"
)

const sparkasseSample = `Auftragskonto;Buchungstag;Valutadatum;Begünstigter/Zahlungspflichtiger;Verwendungszweck;Betrag;Kontonummer/IBAN;Gläubiger ID
DE44;01.10.2023;01.10.2023;Vermieter Meyer;Miete Oktober;-850,00;DE11;DE123
DE44;15.12.2023;15.12.2023;Amazon;Bestellung 1;-25,50;DE22;
`

func TestSparkasseParse(t *testing.T) {
	p := NewSparkasseParser(logging.NewMockLogger())

	result, err := p.Parse(sparkasseSample)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	rent := result.Transactions[0]
	assert.Equal(t, "2023-10-01", rent.BookingDate)
	assert.Equal(t, "Vermieter Meyer", rent.Recipient)
	assert.Equal(t, "Miete Oktober", rent.Purpose)
	assert.True(t, decimal.NewFromInt(-850).Equal(rent.Amount))
	assert.Equal(t, "DE11", rent.IBAN)

	// This dialect has no balance metadata line.
	assert.False(t, result.Metadata.HasBalance())
}

func TestSparkasseShortHeader(t *testing.T) {
	content := `Buchungstag;Begünstigter;Verwendungszweck;Betrag
01.10.2023;;Überweisung;1.200,00
`
	p := NewSparkasseParser(logging.NewMockLogger())
	result, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	tx := result.Transactions[0]
	assert.Equal(t, "Unbekannt", tx.Recipient)
	assert.True(t, decimal.NewFromInt(1200).Equal(tx.Amount))
}

func TestSparkasseSkipsUnparsableAmount(t *testing.T) {
	content := `Buchungstag;Begünstigter;Verwendungszweck;Betrag
01.10.2023;Vermieter Meyer;Miete;-850,00
02.10.2023;Kaputte Zeile;Defekter Betrag;abc-xyz
`
	p := NewSparkasseParser(logging.NewMockLogger())
	result, err := p.Parse(content)
	require.NoError(t, err)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 1, result.SkippedRows)
}
