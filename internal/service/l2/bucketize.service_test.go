package l2_service

import (
	"networthdash/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	nowFloored := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	for _, period := range []domain.Period{domain.Period_1D, domain.Period_1W, domain.Period_1M, domain.Period_3M, domain.Period_1Y} {
		t.Run(string(period), func(t *testing.T) {
			cfg := domain.ConfigForPeriod(period)
			grid := BuildGrid(cfg, nowFloored)

			require.Len(t, grid, cfg.BucketCount+1)
			require.Equal(t, nowFloored, grid[len(grid)-1])
			for i := 1; i < len(grid); i++ {
				require.Equal(t, cfg.BucketInterval, grid[i].Sub(grid[i-1]))
			}
		})
	}
}

func TestBucketize(t *testing.T) {
	nowFloored := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	cfg := domain.ConfigForPeriod(domain.Period_1D)
	grid := BuildGrid(cfg, nowFloored)

	t.Run("carries last known value forward across gaps", func(t *testing.T) {
		series := []domain.HistoricalDataPoint{
			{Timestamp: nowFloored.Add(-20 * time.Hour), Value: decimal.NewFromInt(100)},
			{Timestamp: nowFloored.Add(-6 * time.Hour), Value: decimal.NewFromInt(300)},
		}

		out := Bucketize(series, decimal.NewFromInt(50), grid)
		require.Len(t, out, cfg.BucketCount+1)

		for _, point := range out {
			switch {
			case point.Timestamp.Before(series[0].Timestamp):
				// precedes the earliest known point: seeded with the
				// starting balance
				require.Equal(t, "50", point.Value.String(), "at %s", point.Timestamp)
			case point.Timestamp.Before(series[1].Timestamp):
				require.Equal(t, "100", point.Value.String(), "at %s", point.Timestamp)
			default:
				require.Equal(t, "300", point.Value.String(), "at %s", point.Timestamp)
			}
		}
	})

	t.Run("point between buckets takes effect from the following bucket", func(t *testing.T) {
		pointTime := nowFloored.Add(-2*time.Hour - 30*time.Minute)
		series := []domain.HistoricalDataPoint{
			{Timestamp: pointTime, Value: decimal.NewFromInt(7)},
		}

		out := Bucketize(series, decimal.NewFromInt(3), grid)
		require.Len(t, out, cfg.BucketCount+1)
		for _, point := range out {
			if point.Timestamp.Before(pointTime) {
				require.Equal(t, "3", point.Value.String(), "at %s", point.Timestamp)
			} else {
				require.Equal(t, "7", point.Value.String(), "at %s", point.Timestamp)
			}
		}
	})

	t.Run("matches a hand-computed series", func(t *testing.T) {
		shortGrid := []time.Time{
			nowFloored.Add(-3 * time.Hour),
			nowFloored.Add(-2 * time.Hour),
			nowFloored.Add(-1 * time.Hour),
			nowFloored,
		}
		series := []domain.HistoricalDataPoint{
			{Timestamp: nowFloored.Add(-2 * time.Hour), Value: decimal.NewFromInt(10)},
			{Timestamp: nowFloored.Add(-90 * time.Minute), Value: decimal.NewFromInt(20)},
			{Timestamp: nowFloored, Value: decimal.NewFromInt(30)},
		}

		want := []domain.HistoricalDataPoint{
			{Timestamp: shortGrid[0], Value: decimal.NewFromInt(5)},
			{Timestamp: shortGrid[1], Value: decimal.NewFromInt(10)},
			{Timestamp: shortGrid[2], Value: decimal.NewFromInt(20)},
			{Timestamp: shortGrid[3], Value: decimal.NewFromInt(30)},
		}

		got := Bucketize(series, decimal.NewFromInt(5), shortGrid)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("bucketized series mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty series yields the start value everywhere", func(t *testing.T) {
		out := Bucketize(nil, decimal.NewFromInt(9), grid)
		require.Len(t, out, cfg.BucketCount+1)
		for _, point := range out {
			require.Equal(t, "9", point.Value.String())
		}
	})
}

func TestFlatSeries(t *testing.T) {
	nowFloored := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	cfg := domain.ConfigForPeriod(domain.Period_1W)
	grid := BuildGrid(cfg, nowFloored)

	out := FlatSeries(grid, decimal.NewFromFloat(1234.56))
	require.Len(t, out, cfg.BucketCount+1)
	for i, point := range out {
		require.Equal(t, grid[i], point.Timestamp)
		require.Equal(t, "1234.56", point.Value.String())
	}
}
