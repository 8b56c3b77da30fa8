package bankparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/parsererror"
)

func TestDetect(t *testing.T) {
	logger := logging.NewMockLogger()

	t.Run("DKB via creditor ID column", func(t *testing.T) {
		p, err := Detect("Buchungsdatum;Betrag (€);Gläubiger-ID\n", logger)
		require.NoError(t, err)
		assert.Equal(t, "DKB", p.BankName())
	})

	t.Run("DKB via starred payee header", func(t *testing.T) {
		p, err := Detect("Buchungsdatum;Zahlungsempfänger*in;Betrag (€)\n", logger)
		require.NoError(t, err)
		assert.Equal(t, "DKB", p.BankName())
	})

	t.Run("Sparkasse via booking day column", func(t *testing.T) {
		p, err := Detect("Buchungstag;Begünstigter/Zahlungspflichtiger;Betrag\n", logger)
		require.NoError(t, err)
		assert.Equal(t, "Sparkasse", p.BankName())
	})

	t.Run("Sparkasse via account column", func(t *testing.T) {
		p, err := Detect("Auftragskonto;Verwendungszweck;Betrag\n", logger)
		require.NoError(t, err)
		assert.Equal(t, "Sparkasse", p.BankName())
	})

	t.Run("DKB wins when both marker sets appear", func(t *testing.T) {
		p, err := Detect("Buchungstag;Zahlungsempfänger*in\n", logger)
		require.NoError(t, err)
		assert.Equal(t, "DKB", p.BankName())
	})

	t.Run("unknown content is rejected", func(t *testing.T) {
		_, err := Detect("Invalid;Header\nData;Row\n", logger)
		require.Error(t, err)
		var formatErr *parsererror.UnrecognizedFormatError
		assert.ErrorAs(t, err, &formatErr)
	})
}
