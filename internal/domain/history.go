package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type HistoricalDataPoint struct {
	Timestamp time.Time
	Value     decimal.Decimal
}
