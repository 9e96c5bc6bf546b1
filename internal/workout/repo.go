package workout

import (
	"context"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddPlan(ctx context.Context, accountID int, plan *Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.plan.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	exercisesJson, err := encodeExercises(plan.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workouts (user_id, plano_nome, dias_semana, exercicios, data_criacao)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		accountID, plan.Name, encodeWeekdays(plan.Weekdays), exercisesJson, plan.CreatedAt.Time,
	).Scan(&plan.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return apperr.Invalid("name", "a plan named [%s] already exists", plan.Name)
		}
		return apperr.Storage("add workout plan", err)
	}

	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	return nil
}

func (r *Repo) ListPlans(ctx context.Context, accountID int) (_ []*Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.plan.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, plano_nome, dias_semana, exercicios, data_criacao
			FROM workouts
			WHERE user_id = $1
			ORDER BY id;`,
		accountID,
	)
	if err != nil {
		return nil, apperr.Storage("list workout plans", err)
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list workout plans", err)
	}

	return plans, nil
}

func (r *Repo) GetPlan(ctx context.Context, accountID int, name string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.plan.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT id, plano_nome, dias_semana, exercicios, data_criacao
			FROM workouts
			WHERE user_id = $1 AND plano_nome = $2;`,
		accountID, name,
	)
	plan, err := scanPlan(row)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, apperr.NotFound(fmt.Sprintf("plan [%s]", name))
		}
		return nil, err
	}
	return plan, nil
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var (
		plan          Plan
		weekdaysRaw   string
		exercisesJson []byte
	)
	if err := row.Scan(&plan.ID, &plan.Name, &weekdaysRaw, &exercisesJson, &plan.CreatedAt.Time); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, err
		}
		return nil, apperr.Storage("scan workout plan", err)
	}

	var err error
	if plan.Weekdays, err = decodeWeekdays(weekdaysRaw); err != nil {
		return nil, fmt.Errorf("plan %d: %w", plan.ID, err)
	}
	if plan.Exercises, err = decodeExercises(exercisesJson); err != nil {
		return nil, fmt.Errorf("plan %d: %w", plan.ID, err)
	}
	return &plan, nil
}

func (r *Repo) AddSession(ctx context.Context, accountID int, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.session.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	groupsJson, err := encodeGroups(session.CompletedGroups)
	if err != nil {
		return fmt.Errorf("marshal completed groups: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_history (user_id, plano, data, inicio, fim, duracao, exercicios_completos)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		accountID, session.PlanName, session.Date.Time, session.Start.Time, session.End.Time,
		session.DurationSeconds, groupsJson,
	).Scan(&session.ID)
	if err != nil {
		return apperr.Storage("add workout session", err)
	}
	return nil
}

// ListSessions returns the workout history, most recent first.
func (r *Repo) ListSessions(ctx context.Context, accountID int) (_ []*Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, plano, data, inicio, fim, duracao, exercicios_completos
			FROM workout_history
			WHERE user_id = $1
			ORDER BY inicio DESC, id DESC;`,
		accountID,
	)
	if err != nil {
		return nil, apperr.Storage("list workout sessions", err)
	}
	return scanSessions(rows)
}

// LatestSessions returns up to limit sessions, most recent first.
func (r *Repo) LatestSessions(ctx context.Context, accountID, limit int) (_ []*Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.session.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, plano, data, inicio, fim, duracao, exercicios_completos
			FROM workout_history
			WHERE user_id = $1
			ORDER BY inicio DESC, id DESC
			LIMIT $2;`,
		accountID, limit,
	)
	if err != nil {
		return nil, apperr.Storage("list latest workout sessions", err)
	}
	return scanSessions(rows)
}

func scanSessions(rows pgx.Rows) ([]*Session, error) {
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		var (
			s          Session
			groupsJson []byte
			err        error
		)
		if err = rows.Scan(&s.ID, &s.PlanName, &s.Date.Time, &s.Start.Time, &s.End.Time, &s.DurationSeconds, &groupsJson); err != nil {
			return nil, apperr.Storage("scan workout session", err)
		}
		if s.CompletedGroups, err = decodeGroups(groupsJson); err != nil {
			return nil, fmt.Errorf("session %d: %w", s.ID, err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list workout sessions", err)
	}

	return sessions, nil
}
