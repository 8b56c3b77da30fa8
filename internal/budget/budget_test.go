package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbeck/finance-analyzer/internal/models"
)

func tx(amount float64, fixed bool) models.Transaction {
	t := models.NewTransaction()
	t.Amount = decimal.NewFromFloat(amount)
	t.IsFixedCost = fixed
	return t
}

func TestComputeStandardSplit(t *testing.T) {
	// 2000 income, 1000 fixed (needs), 600 discretionary (wants).
	summary := Compute([]models.Transaction{
		tx(2000, false),
		tx(-1000, true),
		tx(-600, false),
	})

	require.Empty(t, summary.Error)
	assert.True(t, decimal.NewFromInt(2000).Equal(summary.Income))
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.Needs.Amount))
	assert.Equal(t, 50.0, summary.Needs.Percentage)
	assert.True(t, decimal.NewFromInt(600).Equal(summary.Wants.Amount))
	assert.Equal(t, 30.0, summary.Wants.Percentage)
	assert.True(t, decimal.NewFromInt(400).Equal(summary.Savings.Amount))
	assert.Equal(t, 20.0, summary.Savings.Percentage)
}

func TestComputeEmptyInput(t *testing.T) {
	summary := Compute(nil)
	assert.True(t, summary.Empty)
	assert.Empty(t, summary.Error)
}

func TestComputeZeroIncome(t *testing.T) {
	summary := Compute([]models.Transaction{
		tx(-100, true),
		tx(-200, false),
	})
	assert.NotEmpty(t, summary.Error)
	assert.False(t, summary.Empty)
}

func TestComputeNegativeSavings(t *testing.T) {
	// Outflows exceed income: savings is a residual and goes negative.
	summary := Compute([]models.Transaction{
		tx(1000, false),
		tx(-800, true),
		tx(-500, false),
	})

	require.Empty(t, summary.Error)
	assert.True(t, decimal.NewFromInt(-300).Equal(summary.Savings.Amount))
	assert.Equal(t, -30.0, summary.Savings.Percentage)
}

func TestComputeRoundingPrecision(t *testing.T) {
	// 1234.56 of 2345.67 is 52.6313...%, rounded to one decimal.
	summary := Compute([]models.Transaction{
		tx(2345.67, false),
		tx(-1234.56, true),
	})

	require.Empty(t, summary.Error)
	assert.Equal(t, 52.6, summary.Needs.Percentage)
}
