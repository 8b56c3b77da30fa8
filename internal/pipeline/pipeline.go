// Package pipeline wires the ingestion stages together: decode the upload,
// detect the dialect, parse, annotate recurrence / fixed costs / categories,
// reconstruct the balance history and aggregate the budget split.
package pipeline

import (
	"sort"

	"mbeck/finance-analyzer/internal/balance"
	"mbeck/finance-analyzer/internal/bankparser"
	"mbeck/finance-analyzer/internal/budget"
	"mbeck/finance-analyzer/internal/category"
	"mbeck/finance-analyzer/internal/fixedcost"
	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/recurrence"
	"mbeck/finance-analyzer/internal/textutils"
)

// UploadResult is what one processed upload returns to the caller.
type UploadResult struct {
	Count          int                   `json:"count"`
	BankName       string                `json:"bank_name"`
	Transactions   []models.Transaction  `json:"transactions"`
	Metadata       models.Metadata       `json:"metadata"`
	BalanceHistory []models.BalancePoint `json:"balance_history,omitempty"`
	Metrics        models.BudgetSummary  `json:"financial_metrics"`
	SkippedRows    int                   `json:"skipped_rows,omitempty"`
}

// Pipeline is the single-threaded, stateless ingestion pipeline. One instance
// serves all uploads; it holds only immutable classifier configuration.
type Pipeline struct {
	detector *fixedcost.Detector
	tagger   *category.Tagger
	logger   logging.Logger
}

// New creates a Pipeline from its classifier components.
func New(detector *fixedcost.Detector, tagger *category.Tagger, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if detector == nil {
		detector = fixedcost.NewDetector(fixedcost.Config{}, logger)
	}
	if tagger == nil {
		tagger = category.NewTagger(nil)
	}
	return &Pipeline{detector: detector, tagger: tagger, logger: logger}
}

// Process runs one upload end to end. Format and decoding failures abort the
// whole upload; per-row failures were already swallowed by the parser.
func (p *Pipeline) Process(raw []byte) (*UploadResult, error) {
	content, err := textutils.DecodeUpload(raw)
	if err != nil {
		return nil, err
	}

	parser, err := bankparser.Detect(content, p.logger)
	if err != nil {
		return nil, err
	}

	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}
	transactions := parsed.Transactions

	recurrence.MarkRecurring(transactions, p.logger)
	p.detector.Annotate(transactions)
	p.tagger.Annotate(transactions)

	// Balance reconstruction needs the original parse order for its
	// same-day tie-break, so it runs before the output sort.
	var history []models.BalancePoint
	if parsed.Metadata.HasBalance() {
		history = balance.Reconstruct(transactions, *parsed.Metadata.Balance)
	}

	metrics := budget.Compute(transactions)

	sort.SliceStable(transactions, func(a, b int) bool {
		return transactions[a].BookingDate > transactions[b].BookingDate
	})

	p.logger.WithFields(
		logging.Field{Key: "bank", Value: parser.BankName()},
		logging.Field{Key: "count", Value: len(transactions)},
		logging.Field{Key: "skipped", Value: parsed.SkippedRows},
	).Info("Upload processed")

	return &UploadResult{
		Count:          len(transactions),
		BankName:       parser.BankName(),
		Transactions:   transactions,
		Metadata:       parsed.Metadata,
		BalanceHistory: history,
		Metrics:        metrics,
		SkippedRows:    parsed.SkippedRows,
	}, nil
}
