// Package bankparser detects which bank dialect produced an exported CSV and
// normalizes its rows into canonical transactions.
package bankparser

import (
	"encoding/csv"
	"io"
	"strings"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

// Parser is the contract every bank dialect implements. Parse must only fail
// at the detection stage; mid-parse failures are per-row and swallowed.
type Parser interface {
	// BankName returns the display name of the dialect.
	BankName() string

	// Parse converts the decoded CSV text into normalized transactions plus
	// optional statement metadata such as the anchor balance.
	Parse(content string) (*models.ParseResult, error)
}

// readRows parses semicolon-separated CSV rows starting at the header line.
// Malformed rows are returned as-is where possible; the record length is
// padded or truncated to the header length so column lookups stay in range.
func readRows(lines []string, headerIdx int, logger logging.Logger) ([]string, [][]string) {
	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		logger.WithError(err).Warn("Could not read CSV header row")
		return nil, nil
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			logger.WithError(err).Warn("Skipping malformed CSV row")
			continue
		}
		if len(record) < len(header) {
			padded := make([]string, len(header))
			copy(padded, record)
			record = padded
		} else if len(record) > len(header) {
			record = record[:len(header)]
		}
		rows = append(rows, record)
	}
	return header, rows
}

// columnIndex resolves a canonical field to a column position. The priority
// list of historical header spellings is tried exactly first, then a
// case-insensitive substring match on the canonical name.
func columnIndex(header []string, priority []string, canonical string) int {
	clean := make([]string, len(header))
	for i, h := range header {
		clean[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(h), `"`))
	}

	for _, name := range priority {
		for i, h := range clean {
			if h == name {
				return i
			}
		}
	}

	lower := strings.ToLower(canonical)
	for i, h := range clean {
		if strings.Contains(strings.ToLower(h), lower) {
			return i
		}
	}
	return -1
}

// field returns the trimmed cell at idx, or "" when the column is absent.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
