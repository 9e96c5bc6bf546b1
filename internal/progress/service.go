package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/pkg"

	log "github.com/sirupsen/logrus"
)

type progressRepo interface {
	Add(ctx context.Context, accountID int, record *Record) error
	List(ctx context.Context, accountID int) ([]*Record, error)
}

type profileSource interface {
	Get(ctx context.Context, accountID int) (*profile.Profile, error)
}

type Service struct {
	repo     progressRepo
	profiles profileSource
	today    func() pkg.Date
}

func NewService(repo progressRepo, profiles profileSource) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		today:    pkg.Today,
	}
}

func (s *Service) Add(ctx context.Context, accountID int, in Input) (*Record, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	record := in.toRecord(s.today())
	if err := s.repo.Add(ctx, accountID, record); err != nil {
		return nil, fmt.Errorf("add progress: %w", err)
	}

	log.Debugf("progress recorded for account %d: %.1f kg", accountID, record.WeightKg)
	return record, nil
}

func (s *Service) List(ctx context.Context, accountID int) ([]*Record, error) {
	records, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return records, nil
}

func (s *Service) History(ctx context.Context, accountID int) (*History, error) {
	records, err := s.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*Record{}
	}

	h := &History{Records: records}
	p, err := s.profiles.Get(ctx, accountID)
	switch {
	case err == nil:
		h.TargetWeightKg = p.TargetWeightKg
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return h, nil
}
