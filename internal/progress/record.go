package progress

import (
	"strings"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"

	"go.uber.org/multierr"
)

const (
	MinWeightKg, MaxWeightKg   = 20.0, 300.0
	MinAbdomenCm, MaxAbdomenCm = 50.0, 200.0
	MaxNotesLength             = 2000
)

type Record struct {
	ID        int      `json:"id"`
	Date      pkg.Date `json:"date"`
	WeightKg  float64  `json:"weightKg"`
	AbdomenCm float64  `json:"abdomenCm"`
	Notes     string   `json:"notes"`
}

type Input struct {
	// Date defaults to today when omitted
	Date      pkg.Date `json:"date"`
	WeightKg  float64  `json:"weightKg"`
	AbdomenCm float64  `json:"abdomenCm"`
	Notes     string   `json:"notes"`
}

func (in Input) Validate() error {
	var err error
	if in.WeightKg < MinWeightKg || in.WeightKg > MaxWeightKg {
		err = multierr.Append(err, apperr.Invalid("weightKg", "must be between %.0f and %.0f", MinWeightKg, MaxWeightKg))
	}
	if in.AbdomenCm < MinAbdomenCm || in.AbdomenCm > MaxAbdomenCm {
		err = multierr.Append(err, apperr.Invalid("abdomenCm", "must be between %.0f and %.0f", MinAbdomenCm, MaxAbdomenCm))
	}
	if len(in.Notes) > MaxNotesLength {
		err = multierr.Append(err, apperr.Invalid("notes", "must be at most %d characters", MaxNotesLength))
	}
	return err
}

func (in Input) toRecord(today pkg.Date) *Record {
	date := in.Date
	if date.IsZero() {
		date = today
	}
	return &Record{
		Date:      date,
		WeightKg:  in.WeightKg,
		AbdomenCm: in.AbdomenCm,
		Notes:     strings.TrimSpace(in.Notes),
	}
}

// History is the weight evolution with the target to reach, if any.
type History struct {
	Records        []*Record `json:"records"`
	TargetWeightKg float64   `json:"targetWeightKg,omitempty"`
}
