package models

import "strings"

// FixedCostCategory is the closed set of fixed-cost classes a transaction can
// be assigned to by the fixed-cost classifier.
type FixedCostCategory string

const (
	FixedCostHousing   FixedCostCategory = "Wohnen"
	FixedCostInsurance FixedCostCategory = "Versicherungen"
	FixedCostMedia     FixedCostCategory = "Medien"
	FixedCostUtilities FixedCostCategory = "Nebenkosten"
	FixedCostFinancing FixedCostCategory = "Finanzierung"
	FixedCostMisc      FixedCostCategory = "Sonstiges"
	FixedCostNone      FixedCostCategory = "Keine"
)

// SpendingCategory is the coarse report-level category. Unlike
// FixedCostCategory this list is open: new categories only need a keyword list.
type SpendingCategory string

const (
	CategoryHousing   SpendingCategory = "Wohnen"
	CategoryGroceries SpendingCategory = "Essen"
	CategoryAmazon    SpendingCategory = "Amazon"
	CategoryShopping  SpendingCategory = "Shopping"
	CategoryFuelCar   SpendingCategory = "Tanken/Auto"
	CategoryTravel    SpendingCategory = "Reisen/Mobilität"
	CategoryLeisure   SpendingCategory = "Freizeit"
	CategoryIncome    SpendingCategory = "Gehalt"
	CategoryBanking   SpendingCategory = "Bank/Finanzen"
	CategoryOther     SpendingCategory = "Sonstiges"
)

// CategoryConfig pairs a spending category with its keyword list. Tagging
// iterates these in slice order, so position encodes priority.
type CategoryConfig struct {
	Name     SpendingCategory `yaml:"name"`
	Keywords []string         `yaml:"keywords"`
}

// foldText builds the lowercase combined classification input.
func foldText(recipient, purpose string) string {
	return strings.ToLower(recipient) + " " + strings.ToLower(purpose)
}
