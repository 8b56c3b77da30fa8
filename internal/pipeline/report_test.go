package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbeck/finance-analyzer/internal/models"
)

func tx(date, recipient string, amount float64, cat models.SpendingCategory) models.Transaction {
	t := models.NewTransaction()
	t.BookingDate = date
	t.Recipient = recipient
	t.Amount = decimal.NewFromFloat(amount)
	t.Category = cat
	return t
}

func TestSummarizeCategories(t *testing.T) {
	transactions := []models.Transaction{
		tx("2023-12-01", "Vermieter", -850, models.CategoryHousing),
		tx("2023-12-05", "Rewe", -40.50, models.CategoryGroceries),
		tx("2023-12-12", "Edeka", -22.30, models.CategoryGroceries),
		tx("2023-11-30", "Arbeitgeber", 2400, models.CategoryIncome),
	}

	summaries := SummarizeCategories(transactions)
	require.Len(t, summaries, 2)

	assert.Equal(t, models.CategoryHousing, summaries[0].Name)
	assert.True(t, decimal.NewFromInt(850).Equal(summaries[0].Amount))
	assert.Equal(t, 1, summaries[0].Count)

	assert.Equal(t, models.CategoryGroceries, summaries[1].Name)
	assert.True(t, decimal.NewFromFloat(62.8).Equal(summaries[1].Amount))
	assert.Equal(t, 2, summaries[1].Count)
}

func TestSummarizeCategoriesTieBreaksByName(t *testing.T) {
	transactions := []models.Transaction{
		tx("2023-12-01", "b", -10, models.CategoryShopping),
		tx("2023-12-01", "a", -10, models.CategoryAmazon),
	}
	summaries := SummarizeCategories(transactions)
	require.Len(t, summaries, 2)
	assert.Equal(t, models.CategoryAmazon, summaries[0].Name)
	assert.Equal(t, models.CategoryShopping, summaries[1].Name)
}

func TestTopOutflows(t *testing.T) {
	transactions := []models.Transaction{
		tx("2023-12-01", "small", -5, models.CategoryOther),
		tx("2023-12-02", "big", -500, models.CategoryOther),
		tx("2023-12-03", "salary", 2400, models.CategoryIncome),
		tx("2023-12-04", "medium", -50, models.CategoryOther),
	}

	top := TopOutflows(transactions, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "big", top[0].Recipient)
	assert.Equal(t, "medium", top[1].Recipient)
}

func TestTopOutflowsFewerThanN(t *testing.T) {
	top := TopOutflows([]models.Transaction{tx("2023-12-01", "only", -5, models.CategoryOther)}, 10)
	assert.Len(t, top, 1)
}

func TestBuildReport(t *testing.T) {
	transactions := []models.Transaction{
		tx("2023-12-01", "Vermieter", -850, models.CategoryHousing),
		tx("2023-11-30", "Arbeitgeber", 2400, models.CategoryIncome),
	}
	transactions[0].IsFixedCost = true

	anchor := decimal.NewFromFloat(1000)
	report := BuildReport(transactions, models.Metadata{Balance: &anchor})

	assert.Equal(t, 2, report.Count)
	assert.True(t, decimal.NewFromInt(2400).Equal(report.Metrics.Income))
	assert.True(t, decimal.NewFromInt(850).Equal(report.Metrics.Needs.Amount))
	require.Len(t, report.Categories, 1)
	require.Len(t, report.BalanceHistory, 2)
	assert.True(t, anchor.Equal(report.BalanceHistory[1].Balance))
}

func TestBuildReportWithoutBalance(t *testing.T) {
	report := BuildReport([]models.Transaction{tx("2023-12-01", "x", -1, models.CategoryOther)}, models.Metadata{})
	assert.Empty(t, report.BalanceHistory)
	assert.Equal(t, 1, report.Count)
}
