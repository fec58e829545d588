package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// In-memory stub key-value store
// ---------------------------------------------------------------------------

type stubKV struct {
	items  map[string]string
	getErr error // if set, GetItem returns this error
	setErr error // if set, SetItem returns this error
	sets   int   // number of successful SetItem calls
}

func newStubKV() *stubKV {
	return &stubKV{items: make(map[string]string)}
}

func (s *stubKV) GetItem(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *stubKV) SetItem(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.items[key] = value
	s.sets++
	return nil
}

func (s *stubKV) RemoveItem(_ context.Context, key string) error {
	delete(s.items, key)
	return nil
}

// ---------------------------------------------------------------------------
// Deterministic clock and ids
// ---------------------------------------------------------------------------

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type seqIDs struct {
	prefix string
	n      int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

var discardLogger = zerolog.Nop()

func strPtr(s string) *string { return &s }
