package ports

import "context"

// KeyValueStore is the durable string-keyed store the core persists into.
// Each call is atomic on its own; there is no multi-key transaction.
type KeyValueStore interface {
	// GetItem returns the value stored under key. ok is false when the key
	// has never been written or was removed.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem unconditionally overwrites key.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report their own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
