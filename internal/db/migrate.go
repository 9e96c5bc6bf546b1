package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OwnedTables lists every table holding per-account rows, children first.
var OwnedTables = []string{
	"user_profiles",
	"workouts",
	"workout_history",
	"food_log",
	"progress_data",
	"water_log",
	"sleep_log",
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id				SERIAL PRIMARY KEY,
	email			TEXT NOT NULL UNIQUE,
	password_hash	TEXT NOT NULL,
	created_at		TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_profiles (
	id				SERIAL PRIMARY KEY,
	user_id			INT NOT NULL UNIQUE REFERENCES users(id),
	nome			TEXT NOT NULL,
	idade			INT NOT NULL,
	genero			TEXT NOT NULL,
	altura			INT NOT NULL,
	peso			DOUBLE PRECISION NOT NULL,
	objetivo		TEXT NOT NULL,
	nivel_atividade	TEXT NOT NULL,
	meta_peso		DOUBLE PRECISION NOT NULL DEFAULT 0,
	bmi				DOUBLE PRECISION NOT NULL,
	bmr				DOUBLE PRECISION NOT NULL,
	tdee			DOUBLE PRECISION NOT NULL,
	data_cadastro	DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS workouts (
	id				SERIAL PRIMARY KEY,
	user_id			INT NOT NULL REFERENCES users(id),
	plano_nome		TEXT NOT NULL,
	dias_semana		TEXT NOT NULL,
	exercicios		JSONB NOT NULL,
	data_criacao	DATE NOT NULL,
	UNIQUE (user_id, plano_nome)
);

CREATE TABLE IF NOT EXISTS workout_history (
	id						SERIAL PRIMARY KEY,
	user_id					INT NOT NULL REFERENCES users(id),
	plano					TEXT NOT NULL,
	data					DATE NOT NULL,
	inicio					TIMESTAMPTZ NOT NULL,
	fim						TIMESTAMPTZ NOT NULL,
	duracao					DOUBLE PRECISION NOT NULL CHECK (duracao >= 0),
	exercicios_completos	JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS food_log (
	id			SERIAL PRIMARY KEY,
	user_id		INT NOT NULL REFERENCES users(id),
	data		DATE NOT NULL,
	alimentos	JSONB NOT NULL,
	totais		JSONB NOT NULL,
	created_at	TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS progress_data (
	id						SERIAL PRIMARY KEY,
	user_id					INT NOT NULL REFERENCES users(id),
	data					DATE NOT NULL,
	peso					DOUBLE PRECISION NOT NULL,
	circunferencia_abdomen	DOUBLE PRECISION NOT NULL,
	observacoes				TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS water_log (
	id			SERIAL PRIMARY KEY,
	user_id		INT NOT NULL REFERENCES users(id),
	data		DATE NOT NULL,
	ml			INT NOT NULL,
	created_at	TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sleep_log (
	id			SERIAL PRIMARY KEY,
	user_id		INT NOT NULL REFERENCES users(id),
	data		DATE NOT NULL,
	horas		DOUBLE PRECISION NOT NULL,
	created_at	TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_workout_history_user_id ON workout_history(user_id);
CREATE INDEX IF NOT EXISTS idx_food_log_user_id ON food_log(user_id);
CREATE INDEX IF NOT EXISTS idx_progress_data_user_id ON progress_data(user_id);
CREATE INDEX IF NOT EXISTS idx_water_log_user_id_data ON water_log(user_id, data);
CREATE INDEX IF NOT EXISTS idx_sleep_log_user_id_data ON sleep_log(user_id, data);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
