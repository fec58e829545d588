package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/infrastructure/config"
)

func TestOpen_Memory(t *testing.T) {
	backend, err := Open(context.Background(), &config.Config{StoreBackend: config.BackendMemory}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer backend.Close(context.Background())

	if backend.Name != config.BackendMemory {
		t.Fatalf("unexpected backend %q", backend.Name)
	}
	if err := backend.Store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), &config.Config{StoreBackend: "sqlite"}, zerolog.Nop()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestInstrumented_ForwardsOperations(t *testing.T) {
	backend, _ := Open(context.Background(), &config.Config{StoreBackend: config.BackendMemory}, zerolog.Nop())
	store := backend.Store
	ctx := context.Background()

	_ = store.SetItem(ctx, "k", "v")
	v, ok, err := store.GetItem(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("GetItem = %q, %v, %v", v, ok, err)
	}
	_ = store.RemoveItem(ctx, "k")

	if _, ok, _ := store.GetItem(ctx, "k"); ok {
		t.Fatal("expected key removed through the wrapper")
	}
}
