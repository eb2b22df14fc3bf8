package l2_service

import (
	"networthdash/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

// BuildGrid computes the shared output grid for one request: bucketCount+1
// evenly spaced timestamps ending at nowFloored, oldest first. Every
// account's series is bucketized against this same grid so contributions
// align exactly; nothing may build its own.
func BuildGrid(cfg domain.PeriodConfig, nowFloored time.Time) []time.Time {
	grid := make([]time.Time, 0, cfg.BucketCount+1)
	for i := cfg.BucketCount; i >= 0; i-- {
		grid = append(grid, nowFloored.Add(-time.Duration(i)*cfg.BucketInterval))
	}
	return grid
}

// Bucketize resamples an irregular, chronological balance series onto the
// grid. Each bucket takes the value of the latest source point at or
// before its timestamp; buckets preceding the first source point take
// startValue, the balance reconstructed for the start of the window. No
// bucket is ever left undefined.
//
// Single forward merge over both sequences, O(n + m). A per-target rescan
// would produce the same output but degrades quadratically on long
// transaction histories.
func Bucketize(series []domain.HistoricalDataPoint, startValue decimal.Decimal, grid []time.Time) []domain.HistoricalDataPoint {
	out := make([]domain.HistoricalDataPoint, 0, len(grid))

	idx := 0
	currentValue := startValue
	for _, ts := range grid {
		for idx < len(series) && !series[idx].Timestamp.After(ts) {
			currentValue = series[idx].Value
			idx++
		}
		out = append(out, domain.HistoricalDataPoint{
			Timestamp: ts,
			Value:     currentValue,
		})
	}

	return out
}

// FlatSeries contributes a constant balance across the whole grid, for
// accounts with no transactions in the lookback window.
func FlatSeries(grid []time.Time, value decimal.Decimal) []domain.HistoricalDataPoint {
	out := make([]domain.HistoricalDataPoint, 0, len(grid))
	for _, ts := range grid {
		out = append(out, domain.HistoricalDataPoint{Timestamp: ts, Value: value})
	}
	return out
}
