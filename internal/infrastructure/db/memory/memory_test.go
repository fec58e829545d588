package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestStore_GetSetRemove(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if _, ok, err := s.GetItem(ctx, "k"); ok || err != nil {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	_ = s.SetItem(ctx, "k", "v1")
	_ = s.SetItem(ctx, "k", "v2")
	v, ok, err := s.GetItem(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("GetItem = %q, %v, %v; want v2", v, ok, err)
	}

	_ = s.RemoveItem(ctx, "k")
	if err := s.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("second RemoveItem returned error: %v", err)
	}
	if _, ok, _ := s.GetItem(ctx, "k"); ok {
		t.Fatal("expected key to be removed")
	}
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	s := NewStore()
	_ = s.SetItem(context.Background(), "k", "")

	if _, ok, _ := s.GetItem(context.Background(), "k"); !ok {
		t.Fatal("an empty string is still a stored value")
	}
}

func TestStore_ConcurrentWriters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = s.SetItem(ctx, key, "v")
			_, _, _ = s.GetItem(ctx, key)
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("expected 50 keys, got %d", s.Len())
	}
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}
