package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/api/metrics"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// Keys of the persisted layout. Each holds one JSON document.
const (
	SessionKey = "ticketapp_session"
	TicketsKey = "ticketapp_tickets"
	UsersKey   = "ticketapp_users"
)

// readJSON loads and decodes the value under key. found is false when the
// key is absent, empty, or holds something that does not decode into T; the
// last case is logged and counted but never returned as an error.
func readJSON[T any](ctx context.Context, kv ports.KeyValueStore, key, collection string, log zerolog.Logger) (v T, found bool, err error) {
	raw, ok, err := kv.GetItem(ctx, key)
	if err != nil {
		return v, false, err
	}
	if !ok || raw == "" {
		return v, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		metrics.StoreCorruptReadsTotal.WithLabelValues(collection).Inc()
		log.Warn().Err(err).Str("key", key).Msg("unreadable persisted value treated as empty")
		return zero, false, nil
	}
	return v, true, nil
}

func writeJSON(ctx context.Context, kv ports.KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.SetItem(ctx, key, string(data))
}
