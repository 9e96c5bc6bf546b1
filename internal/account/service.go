package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/auth"
	"github.com/2beens/fitbuddy/internal/telemetry/metrics"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type accountRepo interface {
	Add(ctx context.Context, acc *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	DeleteCascade(ctx context.Context, accountID int) error
}

type sessionManager interface {
	Login(ctx context.Context, accountID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (int, error)
	LogoutAll(ctx context.Context, accountID int) error
}

// Cleaner drops per account state kept outside the relational store.
type Cleaner interface {
	ClearAccount(ctx context.Context, accountID int) error
}

type Service struct {
	repo           accountRepo
	sessions       sessionManager
	cleaners       []Cleaner
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo accountRepo,
	sessions sessionManager,
	metricsManager *metrics.Manager,
	cleaners ...Cleaner,
) *Service {
	return &Service{
		repo:           repo,
		sessions:       sessions,
		cleaners:       cleaners,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := pkg.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acc := &Account{
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		CreatedAt:    pkg.NewTimestamp(s.now()),
	}
	if err := s.repo.Add(ctx, acc); err != nil {
		return nil, err
	}

	s.metricsManager.CounterRegistrations.Inc()
	log.Debugf("account %d registered", acc.ID)
	return acc, nil
}

// Login checks the credentials and opens a session. Unknown email and wrong
// password fail the same way.
func (s *Service) Login(ctx context.Context, in LoginInput) (_ string, _ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	acc, err := s.repo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			s.metricsManager.CounterFailedLogins.Inc()
			return "", nil, apperr.ErrAuthFailed
		}
		return "", nil, err
	}

	if !pkg.CheckPasswordHash(in.Password, acc.PasswordHash) {
		s.metricsManager.CounterFailedLogins.Inc()
		log.Tracef("failed login attempt for account %d", acc.ID)
		return "", nil, apperr.ErrAuthFailed
	}

	token, err := s.sessions.Login(ctx, acc.ID, s.now())
	if err != nil {
		return "", nil, apperr.Storage("open session", err)
	}

	return token, acc, nil
}

// Logout drops the session and the account transient state.
func (s *Service) Logout(ctx context.Context, token string) error {
	accountID, err := s.sessions.Logout(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return apperr.ErrUnauthorized
		}
		return apperr.Storage("close session", err)
	}

	if err := s.clearTransient(ctx, accountID); err != nil {
		log.Errorf("logout, account %d: %s", accountID, err)
	}
	return nil
}

// Delete tears down the account with all its data, sessions and transient state.
func (s *Service) Delete(ctx context.Context, accountID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteCascade(ctx, accountID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	// rows are gone already, leftovers below only log
	cleanupErr := s.sessions.LogoutAll(ctx, accountID)
	cleanupErr = multierr.Append(cleanupErr, s.clearTransient(ctx, accountID))
	if cleanupErr != nil {
		log.Errorf("delete account %d, cleanup: %s", accountID, cleanupErr)
	}

	log.Printf("account %d deleted", accountID)
	return nil
}

func (s *Service) clearTransient(ctx context.Context, accountID int) error {
	var err error
	for _, c := range s.cleaners {
		err = multierr.Append(err, c.ClearAccount(ctx, accountID))
	}
	return err
}
