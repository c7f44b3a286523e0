package main

import (
	"fmt"

	"github.com/PrManiezzo/marmo/internal/config"
	"github.com/PrManiezzo/marmo/internal/infra"

	"github.com/redis/go-redis/v9"
)

// ambiente is what every subcommand needs: config, storage and optionally Redis.
type ambiente struct {
	cfg     *config.Config
	storage *infra.Storage
	rdb     *redis.Client
}

func abrirAmbiente(comRedis bool) (*ambiente, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	storage, err := infra.OpenStorage(cfg)
	if err != nil {
		return nil, err
	}
	amb := &ambiente{cfg: cfg, storage: storage}
	if comRedis {
		amb.rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			_ = storage.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
	}
	return amb, nil
}

func (a *ambiente) fechar() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	_ = a.storage.Close()
}
