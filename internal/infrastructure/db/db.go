// Package db selects and connects the key-value backend named by the
// configuration.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/api/metrics"
	"github.com/ticketapp/ticket-system/internal/core/ports"
	"github.com/ticketapp/ticket-system/internal/infrastructure/config"
	"github.com/ticketapp/ticket-system/internal/infrastructure/db/memory"
	"github.com/ticketapp/ticket-system/internal/infrastructure/db/mongo"
	"github.com/ticketapp/ticket-system/internal/infrastructure/db/redis"
)

// Backend is a connected key-value store plus the hook that releases it.
type Backend struct {
	Name  string
	Store *Instrumented
	close func(context.Context) error
}

// Close releases the underlying connection. Safe on the memory backend.
func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Open connects the backend named by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return &Backend{
			Name:  config.BackendMemory,
			Store: Instrument(config.BackendMemory, memory.NewStore()),
		}, nil

	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("connected to redis")
		return &Backend{
			Name:  config.BackendRedis,
			Store: Instrument(config.BackendRedis, redis.NewKVStore(client)),
			close: func(context.Context) error { return client.Close() },
		}, nil

	case config.BackendMongo:
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Str("collection", cfg.Mongo.KVCollection).Msg("connected to mongodb")
		return &Backend{
			Name:  config.BackendMongo,
			Store: Instrument(config.BackendMongo, mongo.NewKVStore(database, cfg.Mongo.KVCollection)),
			close: client.Disconnect,
		}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// kvPinger is what every backend in this package implements.
type kvPinger interface {
	ports.KeyValueStore
	ports.Pinger
}

// Instrumented records the duration of every backend call in
// metrics.KVOperationDuration.
type Instrumented struct {
	backend string
	inner   kvPinger
}

func Instrument(backend string, inner kvPinger) *Instrumented {
	return &Instrumented{backend: backend, inner: inner}
}

func (s *Instrumented) GetItem(ctx context.Context, key string) (string, bool, error) {
	defer s.observe("get", time.Now())
	return s.inner.GetItem(ctx, key)
}

func (s *Instrumented) SetItem(ctx context.Context, key, value string) error {
	defer s.observe("set", time.Now())
	return s.inner.SetItem(ctx, key, value)
}

func (s *Instrumented) RemoveItem(ctx context.Context, key string) error {
	defer s.observe("remove", time.Now())
	return s.inner.RemoveItem(ctx, key)
}

func (s *Instrumented) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *Instrumented) observe(op string, start time.Time) {
	metrics.KVOperationDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}
