package nutrition

import (
	"context"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"

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

func (r *Repo) Add(ctx context.Context, accountID int, entry *Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	foodsJson, err := encodeFoods(entry.Foods)
	if err != nil {
		return fmt.Errorf("marshal foods: %w", err)
	}
	totalsJson, err := encodeTotals(entry.Totals)
	if err != nil {
		return fmt.Errorf("marshal totals: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food_log (user_id, data, alimentos, totais)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		accountID, entry.Date.Time, foodsJson, totalsJson,
	).Scan(&entry.ID)
	if err != nil {
		return apperr.Storage("add food entry", err)
	}
	return nil
}

// List returns the whole food log in chronological order.
func (r *Repo) List(ctx context.Context, accountID int) (_ []*Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, data, alimentos, totais
			FROM food_log
			WHERE user_id = $1
			ORDER BY data, id;`,
		accountID,
	)
	if err != nil {
		return nil, apperr.Storage("list food entries", err)
	}
	return scanEntries(rows)
}

// Latest returns up to limit entries, most recent first.
func (r *Repo) Latest(ctx context.Context, accountID, limit int) (_ []*Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, data, alimentos, totais
			FROM food_log
			WHERE user_id = $1
			ORDER BY data DESC, id DESC
			LIMIT $2;`,
		accountID, limit,
	)
	if err != nil {
		return nil, apperr.Storage("list latest food entries", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]*Entry, error) {
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			e          Entry
			foodsJson  []byte
			totalsJson []byte
		)
		if err := rows.Scan(&e.ID, &e.Date.Time, &foodsJson, &totalsJson); err != nil {
			return nil, apperr.Storage("scan food entry", err)
		}

		var err error
		if e.Foods, err = decodeFoods(foodsJson); err != nil {
			return nil, fmt.Errorf("food entry %d: %w", e.ID, err)
		}
		if e.Totals, err = decodeTotals(totalsJson); err != nil {
			return nil, fmt.Errorf("food entry %d: %w", e.ID, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("read food entries", err)
	}

	return entries, nil
}
