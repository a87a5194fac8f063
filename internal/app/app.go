// Package app wires the back office together: it opens the local medium,
// builds the store, the typed collection registry, and the auth service,
// and runs the startup bootstrap.
package app

import (
	"context"
	"fmt"

	"github.com/magangjo/backoffice/internal/auth"
	"github.com/magangjo/backoffice/internal/config"
	"github.com/magangjo/backoffice/internal/logging"
	"github.com/magangjo/backoffice/internal/medium"
	"github.com/magangjo/backoffice/internal/store"
	"github.com/magangjo/backoffice/internal/tables"
)

// SeedFunc loads reference data into the registry on first start. The
// seed content itself is static domain data owned by the caller.
type SeedFunc func(ctx context.Context, r *tables.Registry) error

// App is the assembled offline back office.
type App struct {
	cfg    *config.Config
	logger logging.Logger
	medium medium.Medium

	Store  *store.Store
	Tables *tables.Registry
	Auth   *auth.Service
}

// New opens the sqlite medium at cfg.DatabasePath (running migrations)
// and builds the store stack on top of it.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	med, err := medium.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("medium init error: %w", err)
	}

	st := store.New(med, logger, store.WithVersion(cfg.SchemaVersion))

	return &App{
		cfg:    cfg,
		logger: logger,
		medium: med,
		Store:  st,
		Tables: tables.NewRegistry(st),
		Auth:   auth.NewService(st, logger, []byte(cfg.TokenSecret), cfg.SessionTTL),
	}, nil
}

// Bootstrap runs the startup sequence: the idempotent admin-account
// bootstrap first, then the optional reference-data seeding.
func (a *App) Bootstrap(ctx context.Context, seed SeedFunc) error {
	created := a.Auth.InitializeDefaultAdmin(ctx, auth.DefaultAdmins)
	a.logger.Info(ctx, "credential bootstrap finished", "created", created)

	if seed != nil {
		if err := seed(ctx, a.Tables); err != nil {
			return fmt.Errorf("seed error: %w", err)
		}
	}
	return nil
}

// Close releases the medium.
func (a *App) Close() error {
	return a.medium.Close()
}
