package profile

import (
	"strings"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/bodymetrics"
	"github.com/2beens/fitbuddy/pkg"

	"go.uber.org/multierr"
)

type Profile struct {
	ID             int                       `json:"id"`
	AccountID      int                       `json:"-"`
	Name           string                    `json:"name"`
	Age            int                       `json:"age"`
	Gender         bodymetrics.Gender        `json:"gender"`
	HeightCm       int                       `json:"heightCm"`
	WeightKg       float64                   `json:"weightKg"`
	Goal           bodymetrics.Goal          `json:"goal"`
	ActivityLevel  bodymetrics.ActivityLevel `json:"activityLevel"`
	TargetWeightKg float64                   `json:"targetWeightKg"`
	BMI            float64                   `json:"bmi"`
	BMR            float64                   `json:"bmr"`
	TDEE           float64                   `json:"tdee"`
	RegisteredAt   pkg.Date                  `json:"registeredAt"`
}

func (p *Profile) Body() bodymetrics.Body {
	return bodymetrics.Body{
		Age:      p.Age,
		Gender:   p.Gender,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
		Goal:     p.Goal,
		Activity: p.ActivityLevel,
	}
}

func (p *Profile) Targets() bodymetrics.Targets {
	return bodymetrics.ComputeTargets(p.Body())
}

// Input is the editable part of a profile.
type Input struct {
	Name           string                    `json:"name"`
	Age            int                       `json:"age"`
	Gender         bodymetrics.Gender        `json:"gender"`
	HeightCm       int                       `json:"heightCm"`
	WeightKg       float64                   `json:"weightKg"`
	Goal           bodymetrics.Goal          `json:"goal"`
	ActivityLevel  bodymetrics.ActivityLevel `json:"activityLevel"`
	TargetWeightKg float64                   `json:"targetWeightKg"`
}

const (
	MinAge, MaxAge           = 10, 100
	MinHeightCm, MaxHeightCm = 100, 250
	MinWeightKg, MaxWeightKg = 20.0, 300.0
)

func (in Input) Validate() error {
	var err error
	if strings.TrimSpace(in.Name) == "" {
		err = multierr.Append(err, apperr.Invalid("name", "is required"))
	}
	if in.Age < MinAge || in.Age > MaxAge {
		err = multierr.Append(err, apperr.Invalid("age", "must be between %d and %d", MinAge, MaxAge))
	}
	if !in.Gender.IsValid() {
		err = multierr.Append(err, apperr.Invalid("gender", "must be one of %v", bodymetrics.Genders))
	}
	if in.HeightCm < MinHeightCm || in.HeightCm > MaxHeightCm {
		err = multierr.Append(err, apperr.Invalid("heightCm", "must be between %d and %d", MinHeightCm, MaxHeightCm))
	}
	if in.WeightKg < MinWeightKg || in.WeightKg > MaxWeightKg {
		err = multierr.Append(err, apperr.Invalid("weightKg", "must be between %.0f and %.0f", MinWeightKg, MaxWeightKg))
	}
	if !in.Goal.IsValid() {
		err = multierr.Append(err, apperr.Invalid("goal", "must be one of %v", bodymetrics.Goals))
	}
	if !in.ActivityLevel.IsValid() {
		err = multierr.Append(err, apperr.Invalid("activityLevel", "must be one of %v", bodymetrics.ActivityLevels))
	}
	// zero means not set, the current weight is used then
	if in.TargetWeightKg != 0 && (in.TargetWeightKg < MinWeightKg || in.TargetWeightKg > MaxWeightKg) {
		err = multierr.Append(err, apperr.Invalid("targetWeightKg", "must be between %.0f and %.0f", MinWeightKg, MaxWeightKg))
	}
	return err
}

// build computes the derived metrics for the validated input.
func build(accountID int, in Input, registeredAt pkg.Date) *Profile {
	p := &Profile{
		AccountID:      accountID,
		Name:           strings.TrimSpace(in.Name),
		Age:            in.Age,
		Gender:         in.Gender,
		HeightCm:       in.HeightCm,
		WeightKg:       in.WeightKg,
		Goal:           in.Goal,
		ActivityLevel:  in.ActivityLevel,
		TargetWeightKg: in.TargetWeightKg,
		RegisteredAt:   registeredAt,
	}
	if p.TargetWeightKg == 0 {
		p.TargetWeightKg = p.WeightKg
	}
	p.deriveMetrics()
	return p
}

// SetWeight replaces the weight and recomputes BMI, BMR and TDEE from it.
func (p *Profile) SetWeight(weightKg float64) {
	p.WeightKg = weightKg
	p.deriveMetrics()
}

func (p *Profile) deriveMetrics() {
	p.BMI = bodymetrics.BMI(p.WeightKg, p.HeightCm)
	p.BMR = bodymetrics.BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	p.TDEE = bodymetrics.TDEE(p.BMR, p.ActivityLevel)
}
