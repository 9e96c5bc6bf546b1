package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type profileRepo interface {
	Get(ctx context.Context, accountID int) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, accountID int) error
	Exists(ctx context.Context, accountID int) (bool, error)
}

type Service struct {
	repo  profileRepo
	cache *ExistenceCache
	// ability to inject the current day (for unit testing)
	today func() pkg.Date
}

func NewService(repo profileRepo, cache *ExistenceCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		today: pkg.Today,
	}
}

// Save validates the input, computes BMI/BMR/TDEE and upserts the profile.
// The registration date of an existing profile is kept.
func (s *Service) Save(ctx context.Context, accountID int, in Input) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	if err := in.Validate(); err != nil {
		return nil, err
	}

	registeredAt := s.today()
	existing, err := s.repo.Get(ctx, accountID)
	switch {
	case err == nil:
		registeredAt = existing.RegisteredAt
	case !errors.Is(err, ErrProfileNotFound):
		return nil, fmt.Errorf("get existing profile: %w", err)
	}

	p := build(accountID, in, registeredAt)
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.cache.Invalidate(accountID)

	log.Debugf("profile of account %d saved", accountID)
	return p, nil
}

func (s *Service) Get(ctx context.Context, accountID int) (*Profile, error) {
	p, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, accountID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	s.cache.Invalidate(accountID)
	return nil
}

// Exists answers from the cache when possible.
func (s *Service) Exists(ctx context.Context, accountID int) (bool, error) {
	if exists, found := s.cache.Get(accountID); found {
		return exists, nil
	}

	exists, err := s.repo.Exists(ctx, accountID)
	if err != nil {
		return false, err
	}
	s.cache.Set(accountID, exists)
	return exists, nil
}
