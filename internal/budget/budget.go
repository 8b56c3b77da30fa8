// Package budget computes the 50/30/20 needs/wants/savings split over one
// transaction set.
package budget

import (
	"math"

	"github.com/shopspring/decimal"

	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/parsererror"
)

// Compute aggregates the budget summary. Income is the sum of all inflows,
// needs the absolute sum of fixed-cost outflows, wants the absolute sum of
// the remaining outflows. Savings is the residual income - needs - wants and
// can go negative when outflows exceed income.
//
// An empty input yields an empty summary (not an error); zero or negative
// income yields a summary carrying an explicit error marker so the caller can
// still render the rest of the response.
func Compute(transactions []models.Transaction) models.BudgetSummary {
	if len(transactions) == 0 {
		return models.BudgetSummary{Empty: true}
	}

	income := decimal.Zero
	needs := decimal.Zero
	wants := decimal.Zero

	for _, tx := range transactions {
		switch {
		case tx.Amount.IsPositive():
			income = income.Add(tx.Amount)
		case tx.IsFixedCost:
			needs = needs.Add(tx.Amount.Abs())
		default:
			wants = wants.Add(tx.Amount.Abs())
		}
	}

	if !income.IsPositive() {
		err := &parsererror.ZeroIncomeError{}
		return models.BudgetSummary{Error: err.Error()}
	}

	savings := income.Sub(needs).Sub(wants)
	return models.BudgetSummary{
		Income:  income,
		Needs:   models.BudgetSlice{Amount: needs, Percentage: percentageOf(needs, income)},
		Wants:   models.BudgetSlice{Amount: wants, Percentage: percentageOf(wants, income)},
		Savings: models.BudgetSlice{Amount: savings, Percentage: percentageOf(savings, income)},
	}
}

// percentageOf renders part/whole as a percentage rounded to one decimal.
// The summary is a display artifact, so float math after the decimal
// summation is fine here.
func percentageOf(part, whole decimal.Decimal) float64 {
	ratio, _ := part.Div(whole).Float64()
	return math.Round(ratio*1000) / 10
}
