// Package currencyutils provides the locale-aware numeric normalization used by
// all bank parsers.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseGermanAmountStrict converts a German-locale amount string into a
// decimal value: the dot is the thousands separator and the comma the decimal
// point, so "1.234,56" becomes 1234.56 and "1200,00" becomes 1200. Unparseable
// input returns an error; the parsers use this to skip the row.
func ParseGermanAmountStrict(raw string) (decimal.Decimal, error) {
	standardized := StandardizeGermanAmount(raw)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(standardized)
}

// ParseGermanAmount is the fail-closed variant used where a bad value must
// not abort anything, such as statement metadata: any unparseable input
// yields decimal zero, never an error.
func ParseGermanAmount(raw string) decimal.Decimal {
	amount, err := ParseGermanAmountStrict(raw)
	if err != nil {
		log.WithField("value", raw).Debug("Unparseable amount, falling back to zero")
		return decimal.Zero
	}
	return amount
}

// StandardizeGermanAmount rewrites a German-locale amount string into the
// plain form decimal.NewFromString accepts. Currency symbols and whitespace
// are stripped first.
func StandardizeGermanAmount(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.NewReplacer("€", "", "EUR", "", " ", "", " ", "").Replace(raw)

	// Thousands separator out first, then the decimal comma.
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")

	return raw
}

// FormatGermanAmount renders a decimal back into the bank-local "D.DDD,DD"
// form. It is the inverse of ParseGermanAmount for canonical input.
func FormatGermanAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
