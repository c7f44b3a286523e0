package infra

import (
	"context"
	"fmt"

	"github.com/PrManiezzo/marmo/internal/config"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/rs/zerolog/log"
)

// Storage is the opened persistence backend chosen by STORAGE_DRIVER.
// Ping backs the health endpoint.
type Storage struct {
	Repos *repository.Repositorios
	Ping  func(ctx context.Context) error
	Close func() error
}

// OpenStorage connects to the configured driver and wires its repositories.
func OpenStorage(cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverSupabase:
		client, err := NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.StorageDriver).Msg("storage: supabase")
		return &Storage{
			Repos: repository.NewSupabaseRepositorios(client),
			Ping: func(ctx context.Context) error {
				return PingSupabase(ctx, client, "produtos")
			},
			Close: func() error { return nil },
		}, nil

	case config.DriverPostgres:
		db, err := NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.StorageDriver).Msg("storage: postgres")
		return &Storage{
			Repos: repository.NewGormRepositorios(db),
			Ping:  sqlDB.PingContext,
			Close: sqlDB.Close,
		}, nil
	}
	return nil, fmt.Errorf("storage: driver desconhecido %q", cfg.StorageDriver)
}
