package account

import (
	"context"
	"fmt"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/db"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrAccountNotFound = apperr.NotFound("account")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, acc *Account) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.account.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, created_at)
			VALUES ($1, $2, $3)
			RETURNING id;`,
		acc.Email, acc.PasswordHash, acc.CreatedAt.Time,
	).Scan(&acc.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return apperr.ErrDuplicateAccount
		}
		return apperr.Storage("add account", err)
	}

	span.SetAttributes(attribute.Int("account.id", acc.ID))
	return nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.account.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var acc Account
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`,
		email,
	).Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &acc.CreatedAt.Time)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, apperr.Storage("get account", err)
	}

	return &acc, nil
}

// DeleteCascade removes every row the account owns and then the account itself,
// all in one transaction.
func (r *Repo) DeleteCascade(ctx context.Context, accountID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.account.deletecascade")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Storage("begin delete account tx", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = apperr.Storage("commit delete account tx", commitErr)
		}
	}()

	for _, table := range db.OwnedTables {
		// table names come from a fixed list, never from input
		if _, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1;`, table), accountID); err != nil {
			return apperr.Storage("delete from "+table, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1;`, accountID)
	if err != nil {
		return apperr.Storage("delete account", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}
