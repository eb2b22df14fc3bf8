package util

import (
	"time"
)

// FloorToInterval pins t to the bucket grid. Intervals are 1h/4h/24h, so
// truncating the UTC wall clock is sufficient.
func FloorToInterval(t time.Time, interval time.Duration) time.Time {
	return t.UTC().Truncate(interval)
}
