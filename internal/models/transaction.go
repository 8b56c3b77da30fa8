// Package models defines the canonical data structures shared by the parsers,
// classifiers and aggregation code.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is the canonical record produced once per source CSV row.
// Amounts are signed: negative means outflow, positive means inflow. The sign
// is load-bearing for every downstream rule.
type Transaction struct {
	BookingDate string          `json:"booking_date" csv:"Buchungsdatum"`
	ValueDate   string          `json:"value_date,omitempty" csv:"Wertstellung"`
	Recipient   string          `json:"recipient" csv:"Zahlungsempfaenger"`
	Sender      string          `json:"sender,omitempty" csv:"Zahlungspflichtiger"`
	Purpose     string          `json:"purpose" csv:"Verwendungszweck"`
	Amount      decimal.Decimal `json:"amount" csv:"Betrag"`
	Currency    string          `json:"currency" csv:"Waehrung"`
	IBAN        string          `json:"iban,omitempty" csv:"IBAN"`

	// Annotation fields populated by the pipeline after parsing.
	Category         SpendingCategory  `json:"category" csv:"Kategorie"`
	FixedCostGroup   FixedCostCategory `json:"fixed_cost_category" csv:"Fixkosten_Kategorie"`
	Confidence       float64           `json:"confidence" csv:"Fixkosten_Confidence"`
	FixedCostReason  string            `json:"fixed_cost_reason,omitempty" csv:"Fixkosten_Grund"`
	IsRecurring      bool              `json:"is_recurring" csv:"Wiederkehrend"`
	IsFixedCost      bool              `json:"is_fixed_cost" csv:"Fixkosten"`
	BalanceAfter     *decimal.Decimal  `json:"balance_after,omitempty" csv:"Saldo_Danach"`
}

// NewTransaction creates a Transaction with defaults applied.
func NewTransaction() Transaction {
	return Transaction{
		Currency:       "EUR",
		Category:       CategoryOther,
		FixedCostGroup: FixedCostNone,
	}
}

// CombinedText returns the case-folded recipient + purpose string used as the
// input to both classifiers.
func (t Transaction) CombinedText() string {
	return foldText(t.Recipient, t.Purpose)
}

// IsOutflow reports whether the transaction is a debit.
func (t Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// Metadata carries optional per-upload values a parser extracted from the
// statement preamble, such as the bank-reported anchor balance.
type Metadata struct {
	Balance      *decimal.Decimal `json:"balance,omitempty"`
	BalanceLabel string           `json:"balance_label,omitempty"`
}

// HasBalance reports whether an anchor balance was found in the upload.
func (m Metadata) HasBalance() bool {
	return m.Balance != nil
}

// ParseResult is what a bank parser returns: the ordered transaction sequence
// plus whatever metadata the dialect exposes.
type ParseResult struct {
	Transactions []Transaction
	Metadata     Metadata
	SkippedRows  int
}

// BalancePoint is one entry of the reconstructed running-balance series.
type BalancePoint struct {
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
}
