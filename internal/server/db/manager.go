// Package db wires database handles to the repositories backed by them and
// runs the embedded schema migrations on open.
package db

import (
	"database/sql"
	"fmt"

	"github.com/abitblue/filebin/internal/server/names"
)

// Driver names accepted by NewRepositoryManager.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// RepositoryManager owns a database connection and hands out the
// repositories bound to it. Close releases the connection; any writes are
// committed per statement, so there is nothing to flush.
type RepositoryManager interface {
	Names() names.Repository
	Conn() *sql.DB
	Close() error
}

// NewRepositoryManager opens the store identified by driver and dsn and
// migrates its schema.
func NewRepositoryManager(driver, dsn string) (RepositoryManager, error) {
	switch driver {
	case DriverSQLite:
		return NewSQLiteRepositoryManager(dsn)
	case DriverPostgres:
		return NewPostgresRepositoryManager(dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}
