// Package server initializes and runs the request-name application: it
// opens the name store, ensures the assets directory exists, allocates one
// obfuscated name, and writes "name expireUnix" to its output. The binary is
// meant to be invoked over an authenticated SSH session by the filebin
// client, which parses that single output line.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abitblue/filebin/internal/logging"
	"github.com/abitblue/filebin/internal/server/config"
	"github.com/abitblue/filebin/internal/server/db"
	"github.com/abitblue/filebin/internal/server/names"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) *App {
	// stdout is reserved for the name/expiry pair; logs go to stderr.
	handler := slog.NewJSONHandler(os.Stderr, nil)
	logger := logging.NewSlogLogger(slog.New(handler))

	return &App{config: c, logger: logger}
}

// Run performs one allocation and writes the result to out as two
// whitespace-separated tokens followed by a newline.
func (app *App) Run(ctx context.Context, out io.Writer) error {
	if err := os.MkdirAll(app.config.AssetsDir, 0o770); err != nil {
		return fmt.Errorf("create assets dir %s: %w", app.config.AssetsDir, err)
	}

	m, err := db.NewRepositoryManager(app.config.DatabaseDriver, app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("store init: %w", err)
	}
	defer m.Close()

	svc := names.NewService(m.Names(), app.logger)

	n, err := svc.Allocate(ctx)
	if err != nil {
		return err
	}

	app.logger.Info(ctx, "name allocated", "name", n.Value, "expire", n.ExpireAt.Unix())

	if _, err := fmt.Fprintf(out, "%s %d\n", n.Value, n.ExpireAt.Unix()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
