package models

import "github.com/shopspring/decimal"

// BudgetSlice is one partition of the 50/30/20 split: its absolute amount and
// its share of total income.
type BudgetSlice struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// BudgetSummary is the 50/30/20 aggregation over one transaction set.
// Savings is a residual (income - needs - wants), so it can be negative.
// Error is set instead of the slices when income is zero or negative; an
// empty input produces the zero value with Empty set.
type BudgetSummary struct {
	Income  decimal.Decimal `json:"income"`
	Needs   BudgetSlice     `json:"needs"`
	Wants   BudgetSlice     `json:"wants"`
	Savings BudgetSlice     `json:"savings"`
	Empty   bool            `json:"-"`
	Error   string          `json:"error,omitempty"`
}
