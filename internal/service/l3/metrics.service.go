package l3_service

import (
	"fmt"
	"networthdash/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type ChartMetrics struct {
	High          decimal.Decimal
	Low           decimal.Decimal
	PercentChange float64
}

// ComputeChartMetrics summarizes a bucketized series for display next to
// the chart.
func ComputeChartMetrics(series []domain.HistoricalDataPoint) (*ChartMetrics, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot compute chart metrics on empty series")
	}

	values := make([]float64, len(series))
	for i, point := range series {
		values[i] = point.Value.InexactFloat64()
	}

	high, err := stats.Max(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute series high: %w", err)
	}
	low, err := stats.Min(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute series low: %w", err)
	}

	first := series[0].Value
	last := series[len(series)-1].Value
	percentChange := 0.0
	if !first.IsZero() {
		percentChange = last.Sub(first).Div(first.Abs()).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return &ChartMetrics{
		High:          decimal.NewFromFloat(high).Round(2),
		Low:           decimal.NewFromFloat(low).Round(2),
		PercentChange: percentChange,
	}, nil
}
