package bankparser

import (
	"strings"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/parsererror"
)

// Detect inspects the raw decoded text for dialect-distinguishing header
// tokens and returns the matching parser. Exactly one dialect is selected;
// unidentifiable content is fatal for the whole upload.
//
// DKB is checked first: its creditor-ID column and gender-starred payee
// header are unique to that export. Sparkasse matches on its account or
// booking-day columns.
func Detect(content string, logger logging.Logger) (Parser, error) {
	if strings.Contains(content, "Gläubiger-ID") || strings.Contains(content, "Zahlungsempfänger*in") {
		return NewDKBParser(logger), nil
	}
	if strings.Contains(content, "Auftragskonto") || strings.Contains(content, "Buchungstag") {
		return NewSparkasseParser(logger), nil
	}

	snippet := content
	if len(snippet) > 60 {
		snippet = snippet[:60]
	}
	return nil, &parsererror.UnrecognizedFormatError{Snippet: snippet}
}
