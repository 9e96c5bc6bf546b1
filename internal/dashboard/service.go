package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/bodymetrics"
	"github.com/2beens/fitbuddy/internal/misc"
	"github.com/2beens/fitbuddy/internal/nutrition"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/internal/wellness"
	"github.com/2beens/fitbuddy/internal/workout"

	log "github.com/sirupsen/logrus"
)

const RecentItems = 3

type profileSource interface {
	Get(ctx context.Context, accountID int) (*profile.Profile, error)
}

type workoutSource interface {
	Recent(ctx context.Context, accountID, n int) ([]*workout.Session, error)
}

type mealSource interface {
	Recent(ctx context.Context, accountID, n int) ([]*nutrition.Entry, error)
}

type wellnessSource interface {
	TodayWithGoal(ctx context.Context, accountID, goalMl int) (*wellness.Today, error)
}

type phraseSource interface {
	RandomMotivation() (*misc.Phrase, error)
	RandomJoke() (*misc.Phrase, error)
}

type Sources struct {
	Profiles profileSource
	Workouts workoutSource
	Meals    mealSource
	Wellness wellnessSource
	Phrases  phraseSource
}

type Dashboard struct {
	Name           string              `json:"name"`
	Targets        bodymetrics.Targets `json:"targets"`
	RecentWorkouts []*workout.Session  `json:"recentWorkouts"`
	RecentMeals    []*nutrition.Entry  `json:"recentMeals"`
	Today          *wellness.Today     `json:"today"`
	Motivation     *misc.Phrase        `json:"motivation,omitempty"`
	Joke           *misc.Phrase        `json:"joke,omitempty"`
}

type Service struct {
	sources Sources
}

func NewService(sources Sources) *Service {
	return &Service{
		sources: sources,
	}
}

// Get reads only what the dashboard shows: the profile, the latest workouts
// and meals, and today's water and sleep.
func (s *Service) Get(ctx context.Context, accountID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.sources.Profiles.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrProfileRequired
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	d := &Dashboard{
		Name:    p.Name,
		Targets: p.Targets(),
	}
	if d.RecentWorkouts, err = s.sources.Workouts.Recent(ctx, accountID, RecentItems); err != nil {
		return nil, fmt.Errorf("recent workouts: %w", err)
	}
	if d.RecentMeals, err = s.sources.Meals.Recent(ctx, accountID, RecentItems); err != nil {
		return nil, fmt.Errorf("recent meals: %w", err)
	}
	if d.Today, err = s.sources.Wellness.TodayWithGoal(ctx, accountID, d.Targets.WaterGoalMl); err != nil {
		return nil, fmt.Errorf("wellness today: %w", err)
	}
	if d.RecentWorkouts == nil {
		d.RecentWorkouts = []*workout.Session{}
	}
	if d.RecentMeals == nil {
		d.RecentMeals = []*nutrition.Entry{}
	}

	// phrases are decoration, a missing one leaves its card empty
	if d.Motivation, err = s.sources.Phrases.RandomMotivation(); err != nil {
		log.Warnf("dashboard motivation phrase: %s", err)
	}
	if d.Joke, err = s.sources.Phrases.RandomJoke(); err != nil {
		log.Warnf("dashboard joke: %s", err)
	}

	return d, nil
}
