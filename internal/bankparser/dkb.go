package bankparser

import (
	"regexp"
	"strings"

	"mbeck/finance-analyzer/internal/currencyutils"
	"mbeck/finance-analyzer/internal/dateutils"
	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

// DKB exports start with a metadata preamble (account, period, balance)
// before the actual header row. The balance line is the anchor for the
// balance reconstruction.
type DKBParser struct {
	logger logging.Logger
}

// NewDKBParser creates a parser for the DKB CSV dialect.
func NewDKBParser(logger logging.Logger) *DKBParser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &DKBParser{logger: logger}
}

// BankName returns the display name of the dialect.
func (p *DKBParser) BankName() string {
	return "DKB"
}

// balanceRe matches a locale-formatted signed amount like 1.234,56 or -950,00.
var balanceRe = regexp.MustCompile(`(-?\d+(?:\.\d+)*,\d+)`)

// Parse scans the preamble for balance metadata, locates the header row and
// converts every data row into a canonical transaction. Rows without a
// booking date are dropped; rows that fail conversion are skipped and counted.
func (p *DKBParser) Parse(content string) (*models.ParseResult, error) {
	lines := strings.Split(content, "\n")

	result := &models.ParseResult{}
	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "Kontostand") {
			p.extractBalance(line, result)
		}
		if strings.Contains(line, "Buchungsdatum") && strings.Contains(line, "Zahlungsempfänger") {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		// Header spelled differently; the metadata preamble is four lines
		// in every DKB export seen so far.
		headerIdx = 4
		if headerIdx >= len(lines) {
			headerIdx = 0
		}
		p.logger.Warn("DKB header row not found, assuming standard preamble length")
	}

	header, rows := readRows(lines, headerIdx, p.logger)
	if header == nil {
		return result, nil
	}

	cols := struct {
		date, valueDate, recipient, sender, purpose, amount, iban int
	}{
		date:      columnIndex(header, []string{"Buchungsdatum"}, "Buchungsdatum"),
		valueDate: columnIndex(header, []string{"Wertstellung"}, "Wertstellung"),
		recipient: columnIndex(header, []string{"Zahlungsempfänger*in", "Zahlungsempfänger"}, "Zahlungsempfänger"),
		sender:    columnIndex(header, []string{"Zahlungspflichtige*r", "Zahlungspflichtiger"}, "Zahlungspflichtiger"),
		purpose:   columnIndex(header, []string{"Verwendungszweck"}, "Verwendungszweck"),
		amount:    columnIndex(header, []string{"Betrag (€)", "Betrag (EUR)"}, "Betrag"),
		iban:      columnIndex(header, []string{"IBAN"}, "IBAN"),
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
		tx.Sender = field(record, cols.sender)
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

// extractBalance pulls the anchor balance and its label out of a
// "Kontostand" metadata line.
func (p *DKBParser) extractBalance(line string, result *models.ParseResult) {
	match := balanceRe.FindString(line)
	if match == "" {
		return
	}

	balance := currencyutils.ParseGermanAmount(match)
	result.Metadata.Balance = &balance

	label := strings.SplitN(line, ";", 2)[0]
	label = strings.Trim(label, `"`)
	label = strings.ReplaceAll(label, ":", "")
	result.Metadata.BalanceLabel = strings.TrimSpace(label)

	p.logger.WithFields(
		logging.Field{Key: "balance", Value: balance.String()},
		logging.Field{Key: "label", Value: result.Metadata.BalanceLabel},
	).Debug("Extracted anchor balance from statement metadata")
}
