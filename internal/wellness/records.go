package wellness

import (
	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"
)

const (
	MinWaterMl, MaxWaterMl = 50, 2000
	MinSleepH, MaxSleepH   = 0.0, 24.0
	// DefaultWaterGoalMl applies while the account has no profile
	DefaultWaterGoalMl = 2000
)

type WaterRecord struct {
	ID   int      `json:"id"`
	Date pkg.Date `json:"date"`
	Ml   int      `json:"ml"`
}

type SleepRecord struct {
	ID    int      `json:"id"`
	Date  pkg.Date `json:"date"`
	Hours float64  `json:"hours"`
}

type WaterInput struct {
	Ml int `json:"ml"`
}

func (in WaterInput) Validate() error {
	if in.Ml < MinWaterMl || in.Ml > MaxWaterMl {
		return apperr.Invalid("ml", "must be between %d and %d", MinWaterMl, MaxWaterMl)
	}
	return nil
}

type SleepInput struct {
	Hours float64 `json:"hours"`
}

func (in SleepInput) Validate() error {
	if in.Hours < MinSleepH || in.Hours > MaxSleepH {
		return apperr.Invalid("hours", "must be between %.0f and %.0f", MinSleepH, MaxSleepH)
	}
	return nil
}

type Today struct {
	Date          pkg.Date `json:"date"`
	WaterTotalMl  int      `json:"waterTotalMl"`
	WaterGoalMl   int      `json:"waterGoalMl"`
	WaterProgress float64  `json:"waterProgress"`
	// SleepHours is the latest sleep logged today, nil when none
	SleepHours *float64 `json:"sleepHours"`
}

// Summarize computes today's hydration against the goal and picks today's
// latest sleep entry. Records must be in insertion order.
func Summarize(today pkg.Date, water []*WaterRecord, sleep []*SleepRecord, goalMl int) *Today {
	if goalMl <= 0 {
		goalMl = DefaultWaterGoalMl
	}

	t := &Today{
		Date:        today,
		WaterGoalMl: goalMl,
	}
	for _, w := range water {
		if w.Date.Equal(today) {
			t.WaterTotalMl += w.Ml
		}
	}
	t.WaterProgress = min(float64(t.WaterTotalMl)/float64(goalMl), 1.0)

	for _, s := range sleep {
		if s.Date.Equal(today) {
			hours := s.Hours
			t.SleepHours = &hours
		}
	}
	return t
}
