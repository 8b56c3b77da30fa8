// Package fixedcost scores how likely a transaction is a fixed
// (non-discretionary) cost and assigns it a fixed-cost category.
package fixedcost

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

// Detector is the rule-based fixed-cost classifier.
type Detector struct {
	config Config
	logger logging.Logger
}

// NewDetector creates a Detector. A zero-value config falls back to the
// built-in rule set.
func NewDetector(config Config, logger logging.Logger) *Detector {
	if len(config.Rules) == 0 {
		config = DefaultConfig()
	}
	if config.FixedCostThreshold == 0 {
		config.FixedCostThreshold = DefaultThreshold
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Detector{config: config, logger: logger}
}

// Detect classifies a single transaction and returns its fixed-cost category,
// a confidence in [0,1] and a human-readable audit trail of the rules that
// fired. The reason string is for display only, never for decisions.
//
// The income exclusion is absolute: an exclusion keyword or a positive amount
// returns (None, 0.0) regardless of every other signal.
func (d *Detector) Detect(recipient, purpose string, amount decimal.Decimal, isRecurring bool) (models.FixedCostCategory, float64, string) {
	text := strings.ToLower(recipient) + " " + strings.ToLower(purpose)

	for _, ex := range d.config.Exclusions {
		if strings.Contains(text, ex) {
			return models.FixedCostNone, 0.0, "Einkommen/Gutschrift ausgeschlossen"
		}
	}
	if amount.IsPositive() {
		return models.FixedCostNone, 0.0, "Einkommen/Gutschrift ausgeschlossen"
	}

	category := models.FixedCostNone
	confidence := 0.0
	var reasons []string
	var matchedRule CategoryRule

	// First category whose keyword list hits wins; first keyword within the
	// list wins too. There is no scoring across multiple hits.
	for _, rule := range d.config.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				category = rule.Category
				matchedRule = rule
				confidence += keywordScore
				reasons = append(reasons, fmt.Sprintf("Keyword-Treffer (%s: '%s')", rule.Category, kw))
				d.logger.WithFields(
					logging.Field{Key: "keyword", Value: kw},
					logging.Field{Key: "category", Value: string(rule.Category)},
				).Debug("Fixed cost keyword matched")
				break
			}
		}
		if category != models.FixedCostNone {
			break
		}
	}

	if category == models.FixedCostNone {
		// Recurring payments with no recognizable keyword still look like a
		// standing order of some kind.
		if isRecurring {
			category = models.FixedCostMisc
			confidence += recurrenceScore
			reasons = append(reasons, "Wiederkehrendes Muster ohne Kategorie-Zuordnung")
		}
	} else if isRecurring {
		confidence += recurrenceScore
		reasons = append(reasons, "Frequenzanalyse bestätigt Regelmäßigkeit (+0.3)")
	}

	// Plausibility check applies only to keyword-matched categories. An
	// amount far above the category's ceiling is more likely a one-off
	// purchase than a subscription.
	if category != models.FixedCostNone && category != models.FixedCostMisc {
		limit := matchedRule.MaxPlausible
		if amount.Abs().LessThanOrEqual(limit) {
			confidence += plausibleScore
			reasons = append(reasons, fmt.Sprintf("Betrag plausibel (<= %s€)", limit))
		} else {
			confidence += implausibleScore
			reasons = append(reasons, fmt.Sprintf("Betrag unplausibel hoch (> %s€) - Punktabzug", limit))
		}
	}

	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	reason := "Keine Hinweise auf Fixkosten"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, ", ")
	}
	return category, confidence, reason
}

// IsFixedCost reports whether a confidence crosses the configured threshold.
// The fixed-cost flag is always derived through this, never set independently.
func (d *Detector) IsFixedCost(confidence float64) bool {
	return confidence >= d.config.FixedCostThreshold
}

// Annotate runs Detect over every transaction and fills the annotation fields.
func (d *Detector) Annotate(transactions []models.Transaction) {
	for i := range transactions {
		tx := &transactions[i]
		category, confidence, reason := d.Detect(tx.Recipient, tx.Purpose, tx.Amount, tx.IsRecurring)
		tx.FixedCostGroup = category
		tx.Confidence = confidence
		tx.FixedCostReason = reason
		tx.IsFixedCost = d.IsFixedCost(confidence)
	}
}
