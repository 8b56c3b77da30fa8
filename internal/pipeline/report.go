package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"mbeck/finance-analyzer/internal/balance"
	"mbeck/finance-analyzer/internal/budget"
	"mbeck/finance-analyzer/internal/models"
)

// CategorySummary aggregates the outflows of one spending category.
type CategorySummary struct {
	Name   models.SpendingCategory `json:"name"`
	Amount decimal.Decimal         `json:"amount"`
	Count  int                     `json:"count"`
}

// Report is the per-session view served after an upload: the budget split,
// the balance series and the spending breakdown.
type Report struct {
	Count          int                   `json:"count"`
	Metrics        models.BudgetSummary  `json:"financial_metrics"`
	Categories     []CategorySummary     `json:"categories"`
	BalanceHistory []models.BalancePoint `json:"balance_history,omitempty"`
}

// BuildReport aggregates a stored transaction set into a Report. The anchor
// metadata is optional; without it no balance series is produced.
func BuildReport(transactions []models.Transaction, metadata models.Metadata) Report {
	report := Report{
		Count:      len(transactions),
		Metrics:    budget.Compute(transactions),
		Categories: SummarizeCategories(transactions),
	}
	if metadata.HasBalance() {
		report.BalanceHistory = balance.Reconstruct(transactions, *metadata.Balance)
	}
	return report
}

// SummarizeCategories totals the absolute outflow per spending category,
// largest first.
func SummarizeCategories(transactions []models.Transaction) []CategorySummary {
	totals := make(map[models.SpendingCategory]*CategorySummary)
	for _, tx := range transactions {
		if !tx.IsOutflow() {
			continue
		}
		summary, ok := totals[tx.Category]
		if !ok {
			summary = &CategorySummary{Name: tx.Category, Amount: decimal.Zero}
			totals[tx.Category] = summary
		}
		summary.Amount = summary.Amount.Add(tx.Amount.Abs())
		summary.Count++
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for _, summary := range totals {
		summaries = append(summaries, *summary)
	}
	sort.SliceStable(summaries, func(a, b int) bool {
		if !summaries[a].Amount.Equal(summaries[b].Amount) {
			return summaries[a].Amount.GreaterThan(summaries[b].Amount)
		}
		return summaries[a].Name < summaries[b].Name
	})
	return summaries
}

// TopOutflows returns the n largest outflows by absolute amount. Used as the
// outlier section of the advisory prompt.
func TopOutflows(transactions []models.Transaction, n int) []models.Transaction {
	outflows := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsOutflow() {
			outflows = append(outflows, tx)
		}
	}
	sort.SliceStable(outflows, func(a, b int) bool {
		return outflows[a].Amount.Abs().GreaterThan(outflows[b].Amount.Abs())
	})
	if len(outflows) > n {
		outflows = outflows[:n]
	}
	return outflows
}
