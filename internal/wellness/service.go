package wellness

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/pkg"
)

type wellnessRepo interface {
	AddWater(ctx context.Context, accountID int, rec *WaterRecord) error
	AddSleep(ctx context.Context, accountID int, rec *SleepRecord) error
	ListWater(ctx context.Context, accountID int, day *pkg.Date) ([]*WaterRecord, error)
	ListSleep(ctx context.Context, accountID int, day *pkg.Date) ([]*SleepRecord, error)
}

type profileSource interface {
	Get(ctx context.Context, accountID int) (*profile.Profile, error)
}

type Service struct {
	repo     wellnessRepo
	profiles profileSource
	today    func() pkg.Date
}

func NewService(repo wellnessRepo, profiles profileSource) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		today:    pkg.Today,
	}
}

func (s *Service) AddWater(ctx context.Context, accountID int, in WaterInput) (*WaterRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := &WaterRecord{Date: s.today(), Ml: in.Ml}
	if err := s.repo.AddWater(ctx, accountID, rec); err != nil {
		return nil, fmt.Errorf("add water: %w", err)
	}
	return rec, nil
}

func (s *Service) AddSleep(ctx context.Context, accountID int, in SleepInput) (*SleepRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := &SleepRecord{Date: s.today(), Hours: in.Hours}
	if err := s.repo.AddSleep(ctx, accountID, rec); err != nil {
		return nil, fmt.Errorf("add sleep: %w", err)
	}
	return rec, nil
}

func (s *Service) Water(ctx context.Context, accountID int) ([]*WaterRecord, error) {
	return s.repo.ListWater(ctx, accountID, nil)
}

func (s *Service) Sleep(ctx context.Context, accountID int) ([]*SleepRecord, error) {
	return s.repo.ListSleep(ctx, accountID, nil)
}

// Today summarizes today's water intake against the profile water goal and
// today's latest sleep entry.
func (s *Service) Today(ctx context.Context, accountID int) (*Today, error) {
	goalMl := 0
	p, err := s.profiles.Get(ctx, accountID)
	switch {
	case err == nil:
		goalMl = p.Targets().WaterGoalMl
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return s.TodayWithGoal(ctx, accountID, goalMl)
}

// TodayWithGoal is Today for a caller that already knows the water goal.
// A goal <= 0 falls back to DefaultWaterGoalMl.
func (s *Service) TodayWithGoal(ctx context.Context, accountID, goalMl int) (*Today, error) {
	today := s.today()

	water, err := s.repo.ListWater(ctx, accountID, &today)
	if err != nil {
		return nil, fmt.Errorf("list water: %w", err)
	}
	sleep, err := s.repo.ListSleep(ctx, accountID, &today)
	if err != nil {
		return nil, fmt.Errorf("list sleep: %w", err)
	}

	return Summarize(today, water, sleep, goalMl), nil
}
