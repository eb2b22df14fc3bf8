package l1_service

import (
	"networthdash/internal/domain"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ReconstructBalances derives the account's balance at each transaction's
// timestamp by unwinding transactions backward from the known current
// balance. Walking newest to oldest, the running balance already includes
// the transaction being visited, so it is emitted at that timestamp
// before the transaction's amount is removed; removing it then yields the
// balance the account held up until that moment.
//
// Input order doesn't matter. The returned series is chronological, holds
// the balance as of each transaction (effect included), and ends with
// {now, currentBalance}. The second return is the reconstructed starting
// balance, the balance before the earliest transaction; it seeds buckets
// that precede the window's first activity. Replaying the transactions
// forward from the starting balance reproduces currentBalance exactly.
func ReconstructBalances(transactions []domain.NormalizedTransaction, currentBalance decimal.Decimal, now time.Time) ([]domain.HistoricalDataPoint, decimal.Decimal) {
	sorted := make([]domain.NormalizedTransaction, len(transactions))
	copy(sorted, transactions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]domain.HistoricalDataPoint, 0, len(sorted)+1)
	points = append(points, domain.HistoricalDataPoint{
		Timestamp: now,
		Value:     currentBalance,
	})

	runningBalance := currentBalance
	for i := len(sorted) - 1; i >= 0; i-- {
		points = append(points, domain.HistoricalDataPoint{
			Timestamp: sorted[i].Date,
			Value:     runningBalance,
		})
		runningBalance = runningBalance.Sub(sorted[i].Amount)
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return points, runningBalance
}
