package workout

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type workoutRepo interface {
	AddPlan(ctx context.Context, accountID int, plan *Plan) error
	ListPlans(ctx context.Context, accountID int) ([]*Plan, error)
	GetPlan(ctx context.Context, accountID int, name string) (*Plan, error)
	AddSession(ctx context.Context, accountID int, session *Session) error
	ListSessions(ctx context.Context, accountID int) ([]*Session, error)
	LatestSessions(ctx context.Context, accountID, limit int) ([]*Session, error)
}

type activeStore interface {
	Get(ctx context.Context, accountID int) (*ActiveWorkout, error)
	Create(ctx context.Context, accountID int, aw *ActiveWorkout) (bool, error)
	Save(ctx context.Context, accountID int, aw *ActiveWorkout) error
	Clear(ctx context.Context, accountID int) error
}

var (
	errWorkoutActive   = apperr.Conflict("a workout is already active")
	errNoActiveWorkout = apperr.Conflict("no active workout")
)

type Service struct {
	repo   workoutRepo
	active activeStore
	// ability to inject the clock (for unit testing)
	now func() time.Time
}

func NewService(repo workoutRepo, active activeStore) *Service {
	return &Service{
		repo:   repo,
		active: active,
		now:    time.Now,
	}
}

func (s *Service) CreatePlan(ctx context.Context, accountID int, in PlanInput) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.plan.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in = in.withDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{
		Name:      in.Name,
		Weekdays:  in.Weekdays,
		Exercises: in.Exercises,
		CreatedAt: pkg.NewDate(s.now()),
	}
	if err := s.repo.AddPlan(ctx, accountID, plan); err != nil {
		return nil, fmt.Errorf("add plan: %w", err)
	}

	log.Debugf("workout plan [%s] created for account %d", plan.Name, accountID)
	return plan, nil
}

func (s *Service) Plans(ctx context.Context, accountID int) ([]*Plan, error) {
	plans, err := s.repo.ListPlans(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// Start activates the named plan. Only one workout can be active per account.
func (s *Service) Start(ctx context.Context, accountID int, planName string) (_ *ActiveWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan", planName))

	existing, err := s.active.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errWorkoutActive
	}

	plan, err := s.repo.GetPlan(ctx, accountID, planName)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	aw := &ActiveWorkout{
		PlanName:  plan.Name,
		Groups:    plan.Groups(),
		Completed: []MuscleGroup{},
		StartedAt: s.now(),
	}
	created, err := s.active.Create(ctx, accountID, aw)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, errWorkoutActive
	}

	return aw, nil
}

// Complete marks a muscle group of the active workout as done.
func (s *Service) Complete(ctx context.Context, accountID int, group MuscleGroup) (_ *ActiveWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	aw, err := s.active.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if aw == nil {
		return nil, errNoActiveWorkout
	}
	if !aw.HasGroup(group) {
		return nil, apperr.Invalid("group", "[%s] is not part of plan [%s]", group, aw.PlanName)
	}
	if aw.IsCompleted(group) {
		return aw, nil
	}

	aw.Complete(group)
	if err := s.active.Save(ctx, accountID, aw); err != nil {
		return nil, err
	}
	return aw, nil
}

func (s *Service) Active(ctx context.Context, accountID int) (*ActiveView, error) {
	aw, err := s.active.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	view := &ActiveView{State: aw.State()}
	if aw != nil {
		view.Workout = aw
		view.Pending = aw.Pending()
		view.ElapsedSeconds = s.now().Sub(aw.StartedAt).Seconds()
	}
	return view, nil
}

// Finish appends the session to the history once every group is completed,
// and only then drops the active workout.
func (s *Service) Finish(ctx context.Context, accountID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	aw, err := s.active.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if aw == nil {
		return nil, errNoActiveWorkout
	}
	if pending := aw.Pending(); len(pending) > 0 {
		return nil, apperr.Conflict("complete all muscle groups first, pending: %v", pending)
	}

	end := s.now()
	duration := end.Sub(aw.StartedAt).Seconds()
	if duration < 0 {
		duration = 0
	}

	session := &Session{
		PlanName:        aw.PlanName,
		Date:            pkg.NewDate(aw.StartedAt),
		Start:           pkg.NewTimestamp(aw.StartedAt),
		End:             pkg.NewTimestamp(end),
		DurationSeconds: duration,
		CompletedGroups: aw.Completed,
	}
	if err := s.repo.AddSession(ctx, accountID, session); err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	if err := s.active.Clear(ctx, accountID); err != nil {
		// the session is stored already, a stale active workout expires by its TTL
		log.Errorf("finish workout, account %d: %s", accountID, err)
	}

	return session, nil
}

// Cancel drops the active workout without recording it.
func (s *Service) Cancel(ctx context.Context, accountID int) error {
	aw, err := s.active.Get(ctx, accountID)
	if err != nil {
		return err
	}
	if aw == nil {
		return errNoActiveWorkout
	}
	return s.active.Clear(ctx, accountID)
}

func (s *Service) History(ctx context.Context, accountID int) ([]*Session, error) {
	sessions, err := s.repo.ListSessions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Recent returns up to n finished workouts, most recent first.
func (s *Service) Recent(ctx context.Context, accountID, n int) ([]*Session, error) {
	sessions, err := s.repo.LatestSessions(ctx, accountID, n)
	if err != nil {
		return nil, fmt.Errorf("latest sessions: %w", err)
	}
	return sessions, nil
}
