package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abitblue/filebin/internal/server/migrations"
	"github.com/abitblue/filebin/internal/server/names"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct {
	db    *sql.DB
	names names.Repository
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Names() names.Repository {
	return m.names
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, "sqlite")
}

func NewSQLiteRepositoryManager(dsn string) (*SQLiteRepositoryManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &SQLiteRepositoryManager{
		db:    db,
		names: names.NewSQLiteRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
