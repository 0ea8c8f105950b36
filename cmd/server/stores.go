package main

import (
	"context"
	"fmt"
	"log/slog"

	"speakerreg/internal/platform/config"
	platformpostgres "speakerreg/internal/platform/postgres"
	platformredis "speakerreg/internal/platform/redis"
	speakerservice "speakerreg/internal/speaker/service"
	"speakerreg/internal/speaker/store/guarded"
	"speakerreg/internal/speaker/store/memory"
	speakerpostgres "speakerreg/internal/speaker/store/postgres"
	speakerredis "speakerreg/internal/speaker/store/redis"
	"speakerreg/pkg/platform/circuit"
)

type speakerStore struct {
	store  speakerservice.SpeakerStore
	health func(ctx context.Context) error
	close  func()
}

func openSpeakerStore(ctx context.Context, cfg config.Config, log *slog.Logger) (*speakerStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := platformpostgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.EnsureSchema {
			if err := speakerpostgres.EnsureSchema(ctx, db); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("ensure schema: %w", err)
			}
		}
		log.Info("using postgres speaker store")
		return &speakerStore{
			store:  guard(speakerpostgres.NewPostgres(db), config.DriverPostgres, cfg.Storage, log),
			health: db.PingContext,
			close:  func() { _ = db.Close() },
		}, nil

	case config.DriverRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("using redis speaker store")
		return &speakerStore{
			store:  guard(speakerredis.NewRedis(client.Client, speakerredis.WithTTL(cfg.Redis.SpeakerTTL)), config.DriverRedis, cfg.Storage, log),
			health: client.Health,
			close:  func() { _ = client.Close() },
		}, nil

	default:
		log.Info("using in-memory speaker store")
		return &speakerStore{
			store:  memory.New(),
			health: func(context.Context) error { return nil },
			close:  func() {},
		}, nil
	}
}

func guard(store speakerservice.SpeakerStore, name string, cfg config.StorageConfig, log *slog.Logger) speakerservice.SpeakerStore {
	breaker := circuit.New(name,
		circuit.WithFailureThreshold(cfg.BreakerThreshold),
		circuit.WithCooldown(cfg.BreakerCooldown),
	)
	return guarded.New(store, breaker, log)
}
