package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		item_key   TEXT PRIMARY KEY,
		item_value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

type PostgresRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo { // Конструктор
	return &PostgresRepo{
		pool: pool,
	}
}

// OpenPostgres connects, pings and makes sure the kv_store table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil { // Пытаемся пингануть БД
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := NewPostgresRepo(pool)
	if err := r.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("migrate kv_store: %w", r.mapError(err))
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `
		SELECT item_value FROM kv_store WHERE item_key = $1
	`, key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrorNotFound
	}
	return value, r.mapError(err)
}

func (r *PostgresRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO kv_store (item_key, item_value) VALUES ($1, $2)
		ON CONFLICT (item_key) DO UPDATE
		SET item_value = EXCLUDED.item_value, updated_at = now()
	`, key, value)
	return r.mapError(err)
}

func (r *PostgresRepo) Close() error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepo) mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("postgres %s: %s: %w", pgErr.Code, pgErr.Message, err)
	}
	return err
}
