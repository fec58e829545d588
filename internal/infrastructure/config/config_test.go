package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Fatalf("expected memory backend by default, got %q", cfg.StoreBackend)
	}
	if cfg.SessionTTL != 24*time.Hour || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected durations: ttl=%s shutdown=%s", cfg.SessionTTL, cfg.ShutdownTimeout)
	}
	if cfg.PasswordHasher != "plain" {
		t.Fatalf("expected plain hasher by default, got %q", cfg.PasswordHasher)
	}
	if cfg.Mongo.Database != "ticketapp" || cfg.Mongo.KVCollection != "kv" {
		t.Fatalf("unexpected mongo defaults: %+v", cfg.Mongo)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 0 {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":             "production",
		"STORE_BACKEND":   "redis",
		"SESSION_TTL":     "30m",
		"PASSWORD_HASHER": "bcrypt",
		"REDIS_ADDR":      "cache:6380",
		"REDIS_PASSWORD":  "s3cret",
		"REDIS_DB":        "2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Fatal("expected production mode")
	}
	if cfg.StoreBackend != BackendRedis || cfg.SessionTTL != 30*time.Minute || cfg.PasswordHasher != "bcrypt" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Redis != (RedisConfig{Addr: "cache:6380", Password: "s3cret", DB: 2}) {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend": {"STORE_BACKEND": "sqlite"},
		"zero ttl":        {"SESSION_TTL": "0s"},
		"malformed ttl":   {"SESSION_TTL": "tomorrow"},
		"non-numeric db":  {"REDIS_DB": "one"},
	}
	for name, env := range cases {
		if _, err := load(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
