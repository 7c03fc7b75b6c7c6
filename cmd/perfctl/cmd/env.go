package cmd

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/perfdesk/internal/config"
	"github.com/templui/perfdesk/internal/db"
	"github.com/templui/perfdesk/internal/logger"
)

// openDB loads config, sets up logging and connects without migrating.
func openDB(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg := config.Load()
	logger.Init(logger.Options{
		AppName:     cfg.AppName,
		Environment: cfg.AppEnv,
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
	})

	database, err := db.Init(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, database, nil
}
