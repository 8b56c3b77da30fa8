// Package recurrence flags transactions that repeat on an approximately
// monthly cadence.
package recurrence

import (
	"sort"

	"mbeck/finance-analyzer/internal/dateutils"
	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
)

// A gap between two bookings counts as monthly when it falls in this closed
// window, which covers short months and weekend-shifted standing orders.
const (
	MinMonthlyGapDays = 27
	MaxMonthlyGapDays = 34
)

// MarkRecurring annotates the transaction set in place. Transactions are
// grouped by the exact (recipient, amount) pair; within a group of two or
// more, one consecutive booking-date gap inside the monthly window flags the
// whole group, including members not adjacent to that gap. Amounts must match
// exactly, there is no tolerance and no fuzzy matching.
func MarkRecurring(transactions []models.Transaction, logger logging.Logger) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	groups := make(map[string][]int)
	for i, tx := range transactions {
		// StringFixed keeps equal values in one group regardless of how the
		// source rendered them ("-39,9" and "-39,90" are the same amount).
		key := tx.Recipient + "\x00" + tx.Amount.StringFixed(2)
		groups[key] = append(groups[key], i)
	}

	for _, indices := range groups {
		if len(indices) < 2 {
			continue
		}

		sort.SliceStable(indices, func(a, b int) bool {
			return transactions[indices[a]].BookingDate < transactions[indices[b]].BookingDate
		})

		monthly := false
		for i := 1; i < len(indices); i++ {
			gap := dateutils.DaysBetween(
				transactions[indices[i-1]].BookingDate,
				transactions[indices[i]].BookingDate,
			)
			if gap >= MinMonthlyGapDays && gap <= MaxMonthlyGapDays {
				monthly = true
				break
			}
		}
		if !monthly {
			continue
		}

		for _, idx := range indices {
			transactions[idx].IsRecurring = true
		}
		logger.WithFields(
			logging.Field{Key: "recipient", Value: transactions[indices[0]].Recipient},
			logging.Field{Key: "amount", Value: transactions[indices[0]].Amount.String()},
			logging.Field{Key: "occurrences", Value: len(indices)},
		).Debug("Marked payee/amount group as recurring")
	}
}
