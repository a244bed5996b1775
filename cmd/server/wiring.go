package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/hitdice"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-encounters/internal/platform/config"
	"github.com/KirkDiggler/rpg-encounters/internal/redis"
	"github.com/KirkDiggler/rpg-encounters/internal/storage"
)

// catalogDocument is the document name used by the SQLite backend
const catalogDocument = "monsters"

// openStore builds the configured catalog store. The returned close
// function releases any connection the store holds.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }

	switch storage.Backend(cfg.CatalogBackend) {
	case storage.BackendFile:
		store, err := storage.NewFileStore(&storage.FileConfig{Path: cfg.CatalogPath})
		return store, noop, err

	case storage.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, noop, errors.Wrap(err, "failed to create redis client")
		}
		store, err := storage.NewRedisStore(&storage.RedisConfig{
			Client: client,
			Key:    cfg.RedisKey,
		})
		if err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, noop, err
		}
		return store, client.Close, nil

	case storage.BackendSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		store, err := storage.NewSQLiteStore(ctx, &storage.SQLiteConfig{
			DB:    db,
			Name:  catalogDocument,
			Clock: clock.New(),
		})
		if err != nil {
			_ = db.Close() // nolint:errcheck // already failing
			return nil, noop, err
		}
		return store, db.Close, nil
	}

	return nil, noop, errors.InvalidArgumentf("unknown catalog backend %q", cfg.CatalogBackend)
}

// newRoller returns a reproducible roller when a seed is configured
func newRoller(ctx context.Context, cfg *config.Config) dice.Roller {
	if cfg.DiceSeed != nil {
		slog.InfoContext(ctx, "Using seeded dice roller", "seed", *cfg.DiceSeed)
		return hitdice.NewSeededRoller(*cfg.DiceSeed)
	}
	return dice.DefaultRoller
}
