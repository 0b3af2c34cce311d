package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/localstate"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/internal/store/postgres"
	"github.com/focusflow/focusflow/internal/store/sqlite"
)

// NewStore builds the configured store adapter and verifies connectivity.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres unavailable: %w", err)
		}
		if err := postgres.EnsureSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		log.Info().Str("driver", "postgres").Msg("store ready")
		return postgres.NewWithDB(db), nil

	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			p, err := localstate.DBPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("sqlite unavailable: %w", err)
		}
		st, err := sqlite.New(db)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite schema: %w", err)
		}
		log.Info().Str("driver", "sqlite").Str("path", path).Msg("store ready")
		return st, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
