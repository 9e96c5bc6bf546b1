package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/nutrition"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/internal/progress"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/internal/wellness"
	"github.com/2beens/fitbuddy/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

type profileSource interface {
	Get(ctx context.Context, accountID int) (*profile.Profile, error)
}

type workoutSource interface {
	Plans(ctx context.Context, accountID int) ([]*workout.Plan, error)
	History(ctx context.Context, accountID int) ([]*workout.Session, error)
}

type foodSource interface {
	Log(ctx context.Context, accountID int) ([]*nutrition.Entry, error)
}

type progressSource interface {
	List(ctx context.Context, accountID int) ([]*progress.Record, error)
}

type wellnessSource interface {
	Water(ctx context.Context, accountID int) ([]*wellness.WaterRecord, error)
	Sleep(ctx context.Context, accountID int) ([]*wellness.SleepRecord, error)
}

type Sources struct {
	Profiles profileSource
	Workouts workoutSource
	Food     foodSource
	Progress progressSource
	Wellness wellnessSource
}

type Loader struct {
	sources Sources
}

func NewLoader(sources Sources) *Loader {
	return &Loader{
		sources: sources,
	}
}

// Load reads every owned record of the account. A missing profile is not an
// error, any other storage failure aborts the load.
func (l *Loader) Load(ctx context.Context, accountID int) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.load")
	span.SetAttributes(attribute.Int("account.id", accountID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	state := &State{
		AccountID: accountID,
	}

	state.Profile, err = l.sources.Profiles.Get(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		state.Profile = nil
	}

	if state.Plans, err = l.sources.Workouts.Plans(ctx, accountID); err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	if state.History, err = l.sources.Workouts.History(ctx, accountID); err != nil {
		return nil, fmt.Errorf("load workout history: %w", err)
	}
	if state.FoodLog, err = l.sources.Food.Log(ctx, accountID); err != nil {
		return nil, fmt.Errorf("load food log: %w", err)
	}
	if state.Progress, err = l.sources.Progress.List(ctx, accountID); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if state.Water, err = l.sources.Wellness.Water(ctx, accountID); err != nil {
		return nil, fmt.Errorf("load water log: %w", err)
	}
	if state.Sleep, err = l.sources.Wellness.Sleep(ctx, accountID); err != nil {
		return nil, fmt.Errorf("load sleep log: %w", err)
	}

	if state.HasProfile() {
		targets := state.Profile.Targets()
		state.Targets = &targets
	}

	return state.withEmptyLists(), nil
}
