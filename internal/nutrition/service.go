package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	log "github.com/sirupsen/logrus"
)

// DashboardDays is how many of the latest entries the nutrition dashboard covers.
const DashboardDays = 7

type foodRepo interface {
	Add(ctx context.Context, accountID int, entry *Entry) error
	List(ctx context.Context, accountID int) ([]*Entry, error)
	Latest(ctx context.Context, accountID, limit int) ([]*Entry, error)
}

type draftStore interface {
	Append(ctx context.Context, accountID int, item ConsumedFood) error
	Items(ctx context.Context, accountID int) ([]ConsumedFood, error)
	Clear(ctx context.Context, accountID int) error
}

type profileSource interface {
	Get(ctx context.Context, accountID int) (*profile.Profile, error)
}

type Service struct {
	repo     foodRepo
	drafts   draftStore
	profiles profileSource
	now      func() time.Time
}

func NewService(repo foodRepo, drafts draftStore, profiles profileSource) *Service {
	return &Service{
		repo:     repo,
		drafts:   drafts,
		profiles: profiles,
		now:      time.Now,
	}
}

func (s *Service) AddToDraft(ctx context.Context, accountID int, in DraftItemInput) (*Draft, error) {
	item, err := in.toConsumed()
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Append(ctx, accountID, item); err != nil {
		return nil, err
	}
	return s.Draft(ctx, accountID)
}

func (s *Service) Draft(ctx context.Context, accountID int) (*Draft, error) {
	items, err := s.drafts.Items(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return newDraft(items), nil
}

func (s *Service) ClearDraft(ctx context.Context, accountID int) error {
	return s.drafts.Clear(ctx, accountID)
}

// Commit stores the draft as today's meal, then empties the draft.
func (s *Service) Commit(ctx context.Context, accountID int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.commit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	items, err := s.drafts.Items(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.Invalid("foods", "add at least one food before saving the meal")
	}

	entry := &Entry{
		Date:   pkg.NewDate(s.now()),
		Foods:  items,
		Totals: Totals(items),
	}
	if err := s.repo.Add(ctx, accountID, entry); err != nil {
		return nil, fmt.Errorf("add food entry: %w", err)
	}

	if err := s.drafts.Clear(ctx, accountID); err != nil {
		log.Errorf("commit meal, account %d: %s", accountID, err)
	}

	return entry, nil
}

func (s *Service) Log(ctx context.Context, accountID int) ([]*Entry, error) {
	entries, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list food log: %w", err)
	}
	return entries, nil
}

// Recent returns up to n meals, most recent first.
func (s *Service) Recent(ctx context.Context, accountID, n int) ([]*Entry, error) {
	entries, err := s.repo.Latest(ctx, accountID, n)
	if err != nil {
		return nil, fmt.Errorf("latest food entries: %w", err)
	}
	return entries, nil
}

type DaySummary struct {
	Date pkg.Date `json:"date"`
	Macros
}

type Dashboard struct {
	Days             []DaySummary `json:"days"`
	MeanProtein      float64      `json:"meanProtein"`
	MeanCarbohydrate float64      `json:"meanCarbohydrate"`
	MeanFat          float64      `json:"meanFat"`
	// TDEE is the daily calorie reference, zero without a profile
	TDEE float64 `json:"tdee,omitempty"`
}

func (s *Service) Dashboard(ctx context.Context, accountID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	latest, err := s.repo.Latest(ctx, accountID, DashboardDays)
	if err != nil {
		return nil, fmt.Errorf("latest food entries: %w", err)
	}

	d := summarize(latest)

	p, err := s.profiles.Get(ctx, accountID)
	switch {
	case err == nil:
		d.TDEE = p.TDEE
	case errors.Is(err, apperr.ErrNotFound):
		// no profile, no reference line
	default:
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return d, nil
}

// summarize expects entries most recent first and lays them out chronologically.
func summarize(latest []*Entry) *Dashboard {
	d := &Dashboard{
		Days: make([]DaySummary, 0, len(latest)),
	}
	if len(latest) == 0 {
		return d
	}

	var sum Macros
	for i := len(latest) - 1; i >= 0; i-- {
		e := latest[i]
		d.Days = append(d.Days, DaySummary{Date: e.Date, Macros: e.Totals})
		sum = sum.Add(e.Totals)
	}

	n := float64(len(latest))
	d.MeanProtein = sum.Protein / n
	d.MeanCarbohydrate = sum.Carbohydrate / n
	d.MeanFat = sum.Fat / n
	return d
}
