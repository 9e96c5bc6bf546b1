package wellness

import (
	"context"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

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

func (r *Repo) AddWater(ctx context.Context, accountID int, rec *WaterRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO water_log (user_id, data, ml) VALUES ($1, $2, $3) RETURNING id;`,
		accountID, rec.Date.Time, rec.Ml,
	).Scan(&rec.ID)
	if err != nil {
		return apperr.Storage("add water record", err)
	}
	return nil
}

func (r *Repo) AddSleep(ctx context.Context, accountID int, rec *SleepRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.sleep.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO sleep_log (user_id, data, horas) VALUES ($1, $2, $3) RETURNING id;`,
		accountID, rec.Date.Time, rec.Hours,
	).Scan(&rec.ID)
	if err != nil {
		return apperr.Storage("add sleep record", err)
	}
	return nil
}

// ListWater returns the water log in insertion order, optionally limited to one day.
func (r *Repo) ListWater(ctx context.Context, accountID int, day *pkg.Date) (_ []*WaterRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.water.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, data, ml FROM water_log WHERE user_id = $1 ORDER BY id;`
	args := []any{accountID}
	if day != nil {
		query = `SELECT id, data, ml FROM water_log WHERE user_id = $1 AND data = $2 ORDER BY id;`
		args = append(args, day.Time)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage("list water records", err)
	}
	defer rows.Close()

	var records []*WaterRecord
	for rows.Next() {
		var rec WaterRecord
		if err := rows.Scan(&rec.ID, &rec.Date.Time, &rec.Ml); err != nil {
			return nil, apperr.Storage("scan water record", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list water records", err)
	}
	return records, nil
}

// ListSleep returns the sleep log in insertion order, optionally limited to one day.
func (r *Repo) ListSleep(ctx context.Context, accountID int, day *pkg.Date) (_ []*SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.sleep.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, data, horas FROM sleep_log WHERE user_id = $1 ORDER BY id;`
	args := []any{accountID}
	if day != nil {
		query = `SELECT id, data, horas FROM sleep_log WHERE user_id = $1 AND data = $2 ORDER BY id;`
		args = append(args, day.Time)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage("list sleep records", err)
	}
	defer rows.Close()

	var records []*SleepRecord
	for rows.Next() {
		var rec SleepRecord
		if err := rows.Scan(&rec.ID, &rec.Date.Time, &rec.Hours); err != nil {
			return nil, apperr.Storage("scan sleep record", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list sleep records", err)
	}
	return records, nil
}
