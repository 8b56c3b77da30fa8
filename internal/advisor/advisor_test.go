package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/pipeline"
)

// stubGenerator fails for every model in failing, answers otherwise.
type stubGenerator struct {
	failing map[string]error
	calls   []string
}

func (s *stubGenerator) Generate(_ context.Context, model, prompt string) (string, error) {
	s.calls = append(s.calls, model)
	if err, ok := s.failing[model]; ok {
		return "", err
	}
	return "Antwort von " + model, nil
}

func sampleSummaries() []pipeline.CategorySummary {
	return []pipeline.CategorySummary{
		{Name: models.CategoryHousing, Amount: decimal.NewFromInt(850), Count: 1},
		{Name: models.CategoryGroceries, Amount: decimal.NewFromFloat(62.8), Count: 2},
	}
}

func TestAnalyzeFirstModelWins(t *testing.T) {
	gen := &stubGenerator{}
	a := New(gen, []string{"alpha", "beta"}, time.Second, logging.NewMockLogger())

	text, err := a.Analyze(context.Background(), sampleSummaries(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Antwort von alpha", text)
	assert.Equal(t, []string{"alpha"}, gen.calls)
}

func TestAnalyzeFallsBackOnFailure(t *testing.T) {
	gen := &stubGenerator{failing: map[string]error{"alpha": errors.New("rate limited")}}
	a := New(gen, []string{"alpha", "beta"}, time.Second, logging.NewMockLogger())

	text, err := a.Analyze(context.Background(), sampleSummaries(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Antwort von beta", text)
	assert.Equal(t, []string{"alpha", "beta"}, gen.calls)
}

func TestAnalyzeAllModelsFail(t *testing.T) {
	boom := errors.New("unavailable")
	gen := &stubGenerator{failing: map[string]error{"alpha": boom, "beta": boom}}
	a := New(gen, []string{"alpha", "beta"}, time.Second, logging.NewMockLogger())

	_, err := a.Analyze(context.Background(), sampleSummaries(), nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBuildPromptContainsData(t *testing.T) {
	tx := models.NewTransaction()
	tx.BookingDate = "2023-12-01"
	tx.Recipient = "Vermieter Meyer"
	tx.Purpose = "Miete Dezember"
	tx.Amount = decimal.NewFromInt(-850)

	prompt := BuildPrompt(sampleSummaries(), []models.Transaction{tx}, "")

	assert.Contains(t, prompt, "Wohnen: 850.00 €")
	assert.Contains(t, prompt, "Essen: 62.80 €")
	assert.Contains(t, prompt, "Vermieter Meyer")
	assert.Contains(t, prompt, "-850.00 €")
	assert.Contains(t, prompt, defaultQuestion)
}

func TestBuildPromptCustomQuestion(t *testing.T) {
	prompt := BuildPrompt(nil, nil, "Wie hoch ist meine Miete?")
	assert.Contains(t, prompt, "Wie hoch ist meine Miete?")
	assert.NotContains(t, prompt, defaultQuestion)
}

func TestDefaultsApplied(t *testing.T) {
	a := New(&stubGenerator{}, nil, 0, nil)
	assert.Equal(t, DefaultModels, a.models)
	assert.Equal(t, DefaultTimeout, a.timeout)
}
