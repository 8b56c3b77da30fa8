// Package balance reconstructs the running account balance from a single
// bank-reported anchor value.
package balance

import (
	"sort"

	"github.com/shopspring/decimal"

	"mbeck/finance-analyzer/internal/models"
)

// Reconstruct walks the transactions backward in time from the anchor (the
// bank-reported balance after the most recent transaction) and fills
// BalanceAfter on every transaction. It returns the per-date balance history
// ordered ascending by date.
//
// Same-day transactions are ordered by their original insertion index so the
// reconstruction is deterministic; a date-only sort would make the result
// depend on sort internals.
func Reconstruct(transactions []models.Transaction, anchor decimal.Decimal) []models.BalancePoint {
	if len(transactions) == 0 {
		return nil
	}

	order := make([]int, len(transactions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := transactions[order[a]], transactions[order[b]]
		if ta.BookingDate != tb.BookingDate {
			return ta.BookingDate > tb.BookingDate
		}
		return order[a] > order[b]
	})

	history := make([]models.BalancePoint, 0, len(transactions))
	running := anchor

	for _, idx := range order {
		tx := &transactions[idx]
		after := running.Round(2)
		tx.BalanceAfter = &after
		history = append(history, models.BalancePoint{
			Date:    tx.BookingDate,
			Amount:  tx.Amount,
			Balance: after,
		})
		// Removing this transaction's signed amount yields the balance the
		// next (older) transaction left behind.
		running = running.Sub(tx.Amount)
	}

	sort.SliceStable(history, func(a, b int) bool {
		return history[a].Date < history[b].Date
	})
	return history
}
