package profile

import (
	"context"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/internal/telemetry/tracing"
	"github.com/2beens/fitbuddy/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = apperr.NotFound("profile")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, accountID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	p := &Profile{AccountID: accountID}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, nome, idade, genero, altura, peso, objetivo, nivel_atividade, meta_peso, bmi, bmr, tdee, data_cadastro
			FROM user_profiles
			WHERE user_id = $1`,
		accountID,
	).Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.HeightCm, &p.WeightKg, &p.Goal, &p.ActivityLevel,
		&p.TargetWeightKg, &p.BMI, &p.BMR, &p.TDEE, &p.RegisteredAt.Time,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, apperr.Storage("get profile", err)
	}

	return p, nil
}

// Upsert inserts the profile or replaces the existing one of the same account.
func (r *Repo) Upsert(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", p.AccountID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO user_profiles
				(user_id, nome, idade, genero, altura, peso, objetivo, nivel_atividade, meta_peso, bmi, bmr, tdee, data_cadastro)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (user_id) DO UPDATE SET
				nome = EXCLUDED.nome,
				idade = EXCLUDED.idade,
				genero = EXCLUDED.genero,
				altura = EXCLUDED.altura,
				peso = EXCLUDED.peso,
				objetivo = EXCLUDED.objetivo,
				nivel_atividade = EXCLUDED.nivel_atividade,
				meta_peso = EXCLUDED.meta_peso,
				bmi = EXCLUDED.bmi,
				bmr = EXCLUDED.bmr,
				tdee = EXCLUDED.tdee,
				data_cadastro = EXCLUDED.data_cadastro
			RETURNING id;`,
		p.AccountID, p.Name, p.Age, string(p.Gender), p.HeightCm, p.WeightKg, string(p.Goal), string(p.ActivityLevel),
		p.TargetWeightKg, p.BMI, p.BMR, p.TDEE, p.RegisteredAt.Time,
	).Scan(&p.ID)
	if err != nil {
		return apperr.Storage("upsert profile", err)
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, accountID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", accountID))

	tag, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, accountID)
	if err != nil {
		return apperr.Storage("delete profile", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *Repo) Exists(ctx context.Context, accountID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM user_profiles WHERE user_id = $1)`,
		accountID,
	).Scan(&exists)
	if err != nil {
		return false, apperr.Storage("profile exists", err)
	}
	return exists, nil
}
