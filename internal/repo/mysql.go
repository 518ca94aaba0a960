package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

type MySQLRepo struct {
	db *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{db: db}
}

// OpenMySQL opens dsn, pings and creates the kv_store table when missing.
func OpenMySQL(ctx context.Context, dsn string) (*MySQLRepo, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	r := NewMySQLRepo(db)
	if err := r.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *MySQLRepo) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_store (
    item_key VARCHAR(191) PRIMARY KEY,
    item_value LONGTEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`)
	if err != nil {
		return fmt.Errorf("migrate kv_store: %w", r.mapError(err))
	}
	return nil
}

func (r *MySQLRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT item_value FROM kv_store WHERE item_key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrorNotFound
	}
	return value, r.mapError(err)
}

func (r *MySQLRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO kv_store (item_key, item_value) VALUES(?, ?)
    ON DUPLICATE KEY UPDATE item_value=VALUES(item_value)`, key, value)
	return r.mapError(err)
}

func (r *MySQLRepo) Close() error {
	return r.db.Close()
}

func (r *MySQLRepo) mapError(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return fmt.Errorf("mysql %d: %s: %w", myErr.Number, myErr.Message, err)
	}
	return err
}
