// Package export writes annotated transactions to the canonical CSV format.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter. The canonical export uses a
// semicolon like the bank exports it is derived from.
var Delimiter rune = ';'

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteTransactionsToCSV writes annotated transactions to a CSV file in the
// canonical column layout defined by the csv tags on models.Transaction.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote transactions to CSV file")
	return nil
}
