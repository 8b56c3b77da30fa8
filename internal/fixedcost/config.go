package fixedcost

import (
	"github.com/shopspring/decimal"

	"mbeck/finance-analyzer/internal/models"
)

// CategoryRule couples a fixed-cost category with its keyword list and the
// maximum amount that is still plausible for a recurring payment of that
// kind. Rules are evaluated in slice order; position encodes priority and a
// transaction matching several categories resolves to the first.
type CategoryRule struct {
	Category     models.FixedCostCategory
	Keywords     []string
	MaxPlausible decimal.Decimal
}

// Config holds the static classifier configuration. Keywords must be
// lowercase; matching is a substring test against the case-folded
// recipient+purpose text.
type Config struct {
	Rules      []CategoryRule
	Exclusions []string

	// FixedCostThreshold is the confidence at or above which a transaction
	// counts as a fixed cost.
	FixedCostThreshold float64
}

// Confidence contributions of the individual rules.
const (
	keywordScore     = 0.5
	recurrenceScore  = 0.3
	plausibleScore   = 0.2
	implausibleScore = -0.3

	// DefaultThreshold is the default fixed-cost confidence cut.
	DefaultThreshold = 0.5
)

// DefaultConfig returns the built-in German-bank rule set.
func DefaultConfig() Config {
	return Config{
		Rules: []CategoryRule{
			{
				Category:     models.FixedCostHousing,
				Keywords:     []string{"lbs sued", "santander", "weg", "miete", "vermieter", "hausverwaltung", "hypothek", "wohngeld"},
				MaxPlausible: decimal.NewFromInt(3000),
			},
			{
				Category:     models.FixedCostInsurance,
				Keywords:     []string{"versicherung", "huk", "allianz", "krankenkasse", "beitrag service", "dekra", "cosmos"},
				MaxPlausible: decimal.NewFromInt(500),
			},
			{
				Category:     models.FixedCostMedia,
				Keywords:     []string{"netflix", "spotify", "disney", "prime", "sky", "telekom", "vodafone", "o2", "gez", "rundfunk"},
				MaxPlausible: decimal.NewFromInt(100),
			},
			{
				Category:     models.FixedCostUtilities,
				Keywords:     []string{"strom", "gas", "wasser", "müll", "abfall", "stadtwerke", "eon", "vattenfall"},
				MaxPlausible: decimal.NewFromInt(500),
			},
			{
				Category:     models.FixedCostFinancing,
				Keywords:     []string{"darlehen", "kredit", "leasing", "finanzierung", "rate", "tilgung", "zinsen", "zins"},
				MaxPlausible: decimal.NewFromInt(2000),
			},
		},
		Exclusions:         []string{"gehalt", "lohn", "bezüge", "rente", "gutschrift", "bonus"},
		FixedCostThreshold: DefaultThreshold,
	}
}
