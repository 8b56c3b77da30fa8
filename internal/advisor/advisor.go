// Package advisor generates a short German-language financial advisory text
// from the aggregated spending data using the Gemini API. Generation is best
// effort: a failure here degrades to an error response and never touches the
// ingestion pipeline.
package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/pipeline"
)

// DefaultModels is the fallback chain tried in order. Rate limits and server
// errors advance to the next model; only exhausting the list is fatal.
var DefaultModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 30 * time.Second

// Generator produces text for a prompt with a specific model. It exists so
// tests can substitute the Gemini client.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// geminiGenerator adapts *genai.Client to the Generator interface.
type geminiGenerator struct {
	client *genai.Client
}

func (g *geminiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation with %s failed: %w", model, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation with %s returned no content", model)
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Advisor runs the model fallback chain over a generator.
type Advisor struct {
	generator Generator
	models    []string
	timeout   time.Duration
	logger    logging.Logger
}

// New creates an Advisor over an existing Generator. Empty model list and
// zero timeout fall back to the defaults.
func New(generator Generator, models []string, timeout time.Duration, logger logging.Logger) *Advisor {
	if len(models) == 0 {
		models = DefaultModels
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Advisor{generator: generator, models: models, timeout: timeout, logger: logger}
}

// NewGemini creates an Advisor backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey string, models []string, timeout time.Duration, logger logging.Logger) (*Advisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return New(&geminiGenerator{client: client}, models, timeout, logger), nil
}

// Analyze builds the advisory prompt from the spending breakdown and runs it
// through the model chain. The first model that answers wins.
func (a *Advisor) Analyze(ctx context.Context, summaries []pipeline.CategorySummary, topOutflows []models.Transaction, userPrompt string) (string, error) {
	prompt := BuildPrompt(summaries, topOutflows, userPrompt)

	var lastErr error
	for _, model := range a.models {
		reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
		text, err := a.generator.Generate(reqCtx, model, prompt)
		cancel()
		if err == nil {
			a.logger.WithField("model", model).Info("Advisory generated")
			return text, nil
		}
		lastErr = err
		a.logger.WithError(err).WithField("model", model).Warn("Advisory model failed, trying next")
	}
	return "", fmt.Errorf("all advisory models failed: %w", lastErr)
}
