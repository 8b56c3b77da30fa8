package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUpload(t *testing.T) {
	t.Run("plain UTF-8 passes through", func(t *testing.T) {
		out, err := DecodeUpload([]byte("Buchungsdatum;Betrag\n01.10.2023;-850,00\n"))
		require.NoError(t, err)
		assert.Contains(t, out, "Buchungsdatum")
	})

	t.Run("UTF-8 umlauts pass through", func(t *testing.T) {
		out, err := DecodeUpload([]byte("Zahlungsempfänger"))
		require.NoError(t, err)
		assert.Equal(t, "Zahlungsempfänger", out)
	})

	t.Run("cp1252 umlaut decodes", func(t *testing.T) {
		// "Begünstigter" with ü encoded as 0xFC
		raw := []byte("Beg\xfcnstigter")
		out, err := DecodeUpload(raw)
		require.NoError(t, err)
		assert.Equal(t, "Begünstigter", out)
	})

	t.Run("cp1252 euro sign decodes", func(t *testing.T) {
		// 0x80 is € in cp1252 but undefined in iso-8859-1's printable range
		out, err := DecodeUpload([]byte("Betrag (\x80)"))
		require.NoError(t, err)
		assert.Equal(t, "Betrag (€)", out)
	})

	t.Run("bytes undefined in cp1252 fall back to iso-8859-1", func(t *testing.T) {
		out, err := DecodeUpload([]byte("a\x81b"))
		require.NoError(t, err)
		assert.Equal(t, "ab", out)
	})

	t.Run("empty input is fine", func(t *testing.T) {
		out, err := DecodeUpload(nil)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})
}
