package names

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abitblue/filebin/internal/common"
	"github.com/abitblue/filebin/internal/dbx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Exists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM assets WHERE obfuscated_name = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Insert reserves name. expire_time is stored as unix seconds UTC.
func (r *SQLiteRepository) Insert(ctx context.Context, name string, expireAt time.Time) error {
	query := `INSERT INTO assets (obfuscated_name, expire_time) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, name, expireAt.UTC().Unix())
	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return common.ErrNameTaken
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
