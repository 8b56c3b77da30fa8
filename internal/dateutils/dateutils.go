// Package dateutils provides the date normalization used by the bank parsers.
package dateutils

import (
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutGerman   = "02.01.2006"
	DateLayoutGermanYY = "02.01.06"
)

// DayFirstFormats is the ordered list of layouts tried when parsing a
// day-first bank date. ISO input is accepted too since some exports are
// already normalized.
var DayFirstFormats = []string{
	DateLayoutGerman,
	DateLayoutISO,
	DateLayoutGermanYY,
	"02/01/2006",
	"2.1.2006",
}

// ParseBankDate parses a day-first textual date and returns it in ISO form
// (YYYY-MM-DD). The second return value is false for empty, placeholder or
// unparsable input; the caller drops the owning row in that case.
func ParseBankDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return "", false
	}

	for _, layout := range DayFirstFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayoutISO), true
		}
	}
	return "", false
}

// DaysBetween returns the whole-day distance between two ISO dates.
// Both dates must be valid ISO strings; invalid input yields 0.
func DaysBetween(fromISO, toISO string) int {
	from, err := time.Parse(DateLayoutISO, fromISO)
	if err != nil {
		return 0
	}
	to, err := time.Parse(DateLayoutISO, toISO)
	if err != nil {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
