package progress

import (
	"context"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/profile"
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

// Add appends the record and moves the profile weight, with its derived metrics,
// in the same transaction.
func (r *Repo) Add(ctx context.Context, accountID int, record *Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Storage("begin progress tx", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = apperr.Storage("commit progress tx", commitErr)
		}
	}()

	p := &profile.Profile{AccountID: accountID}
	err = tx.QueryRow(
		ctx,
		`SELECT idade, genero, altura, nivel_atividade
			FROM user_profiles
			WHERE user_id = $1
			FOR UPDATE;`,
		accountID,
	).Scan(&p.Age, &p.Gender, &p.HeightCm, &p.ActivityLevel)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return profile.ErrProfileNotFound
		}
		return apperr.Storage("lock profile", err)
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO progress_data (user_id, data, peso, circunferencia_abdomen, observacoes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		accountID, record.Date.Time, record.WeightKg, record.AbdomenCm, record.Notes,
	).Scan(&record.ID)
	if err != nil {
		return apperr.Storage("add progress record", err)
	}

	// derived metrics follow the new weight
	p.SetWeight(record.WeightKg)
	if _, err = tx.Exec(
		ctx,
		`UPDATE user_profiles SET peso = $1, bmi = $2, bmr = $3, tdee = $4 WHERE user_id = $5;`,
		p.WeightKg, p.BMI, p.BMR, p.TDEE, accountID,
	); err != nil {
		return apperr.Storage("update profile weight", err)
	}

	return nil
}

// List returns the records ordered by date.
func (r *Repo) List(ctx context.Context, accountID int) (_ []*Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, data, peso, circunferencia_abdomen, observacoes
			FROM progress_data
			WHERE user_id = $1
			ORDER BY data, id;`,
		accountID,
	)
	if err != nil {
		return nil, apperr.Storage("list progress records", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Date.Time, &rec.WeightKg, &rec.AbdomenCm, &rec.Notes); err != nil {
			return nil, apperr.Storage("scan progress record", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list progress records", err)
	}

	return records, nil
}
