package names

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abitblue/filebin/internal/common"
	"github.com/abitblue/filebin/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique-constraint error.
const uniqueViolation = "23505"

// PostgresRepository implements Repository on PostgreSQL, for deployments
// where several hosts allocate names against one shared store.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM assets WHERE obfuscated_name = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, name string, expireAt time.Time) error {
	query := `INSERT INTO assets (obfuscated_name, expire_time) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, name, expireAt.UTC().Unix())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrNameTaken
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
