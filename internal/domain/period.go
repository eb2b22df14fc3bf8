package domain

import (
	"fmt"
	"time"
)

// Period is a selectable chart window. It only exists as a lookup key
// into the sampling configs below.
type Period string

const (
	Period_1D Period = "1D"
	Period_1W Period = "1W"
	Period_1M Period = "1M"
	Period_3M Period = "3M"
	Period_1Y Period = "1Y"
)

func NewPeriod(s string) (*Period, error) {
	p := Period(s)
	switch p {
	case Period_1D, Period_1W, Period_1M, Period_3M, Period_1Y:
		return &p, nil
	}
	return nil, fmt.Errorf("unknown period %q", s)
}

type PeriodConfig struct {
	LookbackDays   int
	BucketInterval time.Duration
	BucketCount    int
}

// 1W deliberately over-samples at 6 buckets/day so intraweek movement
// still shows up; everything 1M and longer samples daily.
var periodConfigs = map[Period]PeriodConfig{
	Period_1D: {LookbackDays: 1, BucketInterval: time.Hour, BucketCount: 24},
	Period_1W: {LookbackDays: 7, BucketInterval: 4 * time.Hour, BucketCount: 42},
	Period_1M: {LookbackDays: 30, BucketInterval: 24 * time.Hour, BucketCount: 30},
	Period_3M: {LookbackDays: 90, BucketInterval: 24 * time.Hour, BucketCount: 90},
	Period_1Y: {LookbackDays: 365, BucketInterval: 24 * time.Hour, BucketCount: 365},
}

// ConfigForPeriod returns the sampling config for p. An unknown period is a
// programming error upstream, but this feeds a user-facing chart, so fall
// back to the 1D config instead of failing the request.
func ConfigForPeriod(p Period) PeriodConfig {
	cfg, ok := periodConfigs[p]
	if !ok {
		return periodConfigs[Period_1D]
	}
	return cfg
}
