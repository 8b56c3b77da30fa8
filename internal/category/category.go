// Package category tags transactions with a coarse spending category for
// aggregate reporting. It is independent of the fixed-cost classifier: a
// transaction can be tagged Groceries here while carrying no fixed-cost
// category at all.
package category

import (
	"strings"

	"mbeck/finance-analyzer/internal/models"
)

// DefaultCategories is the ordered (category, keywords) list. Tagging scans
// it top to bottom and the first category with any matching keyword wins, so
// the order is behaviorally significant and must stay a slice.
var DefaultCategories = []models.CategoryConfig{
	{Name: models.CategoryHousing, Keywords: []string{"Miete", "Nebenkosten", "Strom", "Gas", "Vermieter", "Hausverwaltung", "Grundsteuer", "Rundfunkbeitrag", "GEZ"}},
	{Name: models.CategoryGroceries, Keywords: []string{"Edeka", "Rewe", "Aldi", "Lidl", "Netto", "Supermarkt", "Bäcker", "Penny", "Kaufland", "Alnatura", "Denns"}},
	{Name: models.CategoryAmazon, Keywords: []string{"Amazon", "Audible", "Prime Video", "Marketplace"}},
	{Name: models.CategoryShopping, Keywords: []string{"Zalando", "H&M", "Zara", "Douglas", "Media Markt", "Saturn", "IKEA", "Action", "Mango", "Asos", "Best Secret"}},
	{Name: models.CategoryFuelCar, Keywords: []string{"Shell", "Aral", "Total", "Esso", "Jet", "Tankstelle", "KFZ", "Werkstatt", "Autohaus", "Versicherung"}},
	{Name: models.CategoryTravel, Keywords: []string{"DB Vertrieb", "Lufthansa", "Airbnb", "Booking.com", "Uber", "Taxi", "Flugticket", "Ryanair", "Eurowings", "VVS", "HVV", "BVG"}},
	{Name: models.CategoryLeisure, Keywords: []string{"Kino", "Fitness", "Netflix", "Spotify", "Disney+", "Restaurant", "Bar", "McFit", "FitX", "Eversports", "Steam", "Nintendo"}},
	{Name: models.CategoryIncome, Keywords: []string{"Gehalt", "Lohn", "Arbeitgeber", "Besoldung", "Rente"}},
	{Name: models.CategoryBanking, Keywords: []string{"Zinsen", "Dividende", "Depot", "Trade Republic", "Scalable", "DKB", "Sparkasse", "Volksbank"}},
}

// Tagger classifies transactions against an ordered category list.
type Tagger struct {
	categories []models.CategoryConfig
}

// NewTagger creates a Tagger. An empty list falls back to the defaults.
func NewTagger(categories []models.CategoryConfig) *Tagger {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &Tagger{categories: categories}
}

// Tag returns the spending category of a transaction: the first category in
// priority order with a keyword contained in the case-folded
// recipient+purpose text, or Other when nothing matches.
func (t *Tagger) Tag(tx models.Transaction) models.SpendingCategory {
	text := tx.CombinedText()
	for _, cfg := range t.categories {
		for _, kw := range cfg.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return cfg.Name
			}
		}
	}
	return models.CategoryOther
}

// Annotate tags every transaction in place.
func (t *Tagger) Annotate(transactions []models.Transaction) {
	for i := range transactions {
		transactions[i].Category = t.Tag(transactions[i])
	}
}
