package bankparser

import (
	"strings"

	"mbeck/finance-analyzer/internal/currencyutils"
	"mbeck/finance-analyzer/internal/dateutils"
	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

// SparkasseParser handles the Sparkasse CSV-MT940 style export. The header is
// usually the first line; older exports prefix an account metadata row.
type SparkasseParser struct {
	logger logging.Logger
}

// NewSparkasseParser creates a parser for the Sparkasse CSV dialect.
func NewSparkasseParser(logger logging.Logger) *SparkasseParser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &SparkasseParser{logger: logger}
}

// BankName returns the display name of the dialect.
func (p *SparkasseParser) BankName() string {
	return "Sparkasse"
}

// Parse locates the header row and converts every data row into a canonical
// transaction. This dialect has no balance metadata line.
func (p *SparkasseParser) Parse(content string) (*models.ParseResult, error) {
	lines := strings.Split(content, "\n")

	headerIdx := 0
	for i, line := range lines {
		if strings.Contains(line, "Buchungstag") &&
			(strings.Contains(line, "Begünstigter") || strings.Contains(line, "Zahlungspflichtiger")) {
			headerIdx = i
			break
		}
	}

	result := &models.ParseResult{}
	header, rows := readRows(lines, headerIdx, p.logger)
	if header == nil {
		return result, nil
	}

	cols := struct {
		date, valueDate, recipient, purpose, amount, iban int
	}{
		date:      columnIndex(header, []string{"Buchungstag"}, "Buchungstag"),
		valueDate: columnIndex(header, []string{"Valutadatum", "Wertstellung"}, "Valutadatum"),
		recipient: columnIndex(header, []string{"Begünstigter/Zahlungspflichtiger", "Begünstigter"}, "Begünstigter"),
		purpose:   columnIndex(header, []string{"Verwendungszweck"}, "Verwendungszweck"),
		amount:    columnIndex(header, []string{"Betrag"}, "Betrag"),
		iban:      columnIndex(header, []string{"Kontonummer/IBAN", "IBAN"}, "IBAN"),
	}

	for _, record := range rows {
		rawDate := field(record, cols.date)
		if rawDate == "" || strings.EqualFold(rawDate, "none") {
			continue
		}

		isoDate, ok := dateutils.ParseBankDate(rawDate)
		if !ok {
			p.logger.WithField("date", rawDate).Debug("Skipping row with unparsable booking date")
			result.SkippedRows++
			continue
		}

		tx := models.NewTransaction()
		tx.BookingDate = isoDate
		if raw := field(record, cols.valueDate); raw != "" {
			if iso, ok := dateutils.ParseBankDate(raw); ok {
				tx.ValueDate = iso
			}
		}
		rawAmount := field(record, cols.amount)
		amount, err := currencyutils.ParseGermanAmountStrict(rawAmount)
		if err != nil {
			p.logger.WithField("amount", rawAmount).Debug("Skipping row with unparsable amount")
			result.SkippedRows++
			continue
		}

		tx.Recipient = field(record, cols.recipient)
		if tx.Recipient == "" {
			tx.Recipient = "Unbekannt"
		}
		tx.Purpose = field(record, cols.purpose)
		tx.Amount = amount
		tx.IBAN = field(record, cols.iban)

		result.Transactions = append(result.Transactions, tx)
	}

	p.logger.WithFields(
		logging.Field{Key: "bank", Value: p.BankName()},
		logging.Field{Key: "count", Value: len(result.Transactions)},
		logging.Field{Key: "skipped", Value: result.SkippedRows},
	).Info("Parsed bank statement")

	return result, nil
}
