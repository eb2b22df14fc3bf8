package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	for _, valid := range []string{"1D", "1W", "1M", "3M", "1Y"} {
		p, err := NewPeriod(valid)
		require.NoError(t, err)
		require.Equal(t, Period(valid), *p)
	}

	_, err := NewPeriod("2W")
	require.Error(t, err)
	_, err = NewPeriod("")
	require.Error(t, err)
}

func TestConfigForPeriod(t *testing.T) {
	tests := []struct {
		period         Period
		lookbackDays   int
		bucketInterval time.Duration
		bucketCount    int
	}{
		{Period_1D, 1, time.Hour, 24},
		{Period_1W, 7, 4 * time.Hour, 42},
		{Period_1M, 30, 24 * time.Hour, 30},
		{Period_3M, 90, 24 * time.Hour, 90},
		{Period_1Y, 365, 24 * time.Hour, 365},
	}
	for _, tc := range tests {
		t.Run(string(tc.period), func(t *testing.T) {
			cfg := ConfigForPeriod(tc.period)
			require.Equal(t, tc.lookbackDays, cfg.LookbackDays)
			require.Equal(t, tc.bucketInterval, cfg.BucketInterval)
			require.Equal(t, tc.bucketCount, cfg.BucketCount)
		})
	}

	t.Run("unknown period falls back to 1D", func(t *testing.T) {
		cfg := ConfigForPeriod(Period("6M"))
		require.Equal(t, ConfigForPeriod(Period_1D), cfg)
	})
}
