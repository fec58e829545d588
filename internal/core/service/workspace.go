package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// WorkspaceOptions carries the collaborators shared by every workspace.
type WorkspaceOptions struct {
	Clock      ports.Clock
	IDs        ports.IDGenerator
	Hasher     ports.PasswordHasher
	SessionTTL time.Duration
}

// WorkspaceFactory binds the core stores to per-workspace key namespaces of
// a single backend.
type WorkspaceFactory struct {
	store ports.KeyValueStore
	opts  WorkspaceOptions
	log   zerolog.Logger
}

func NewWorkspaceFactory(store ports.KeyValueStore, opts WorkspaceOptions, log zerolog.Logger) *WorkspaceFactory {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	if opts.Hasher == nil {
		opts.Hasher = PlainHasher{}
	}
	return &WorkspaceFactory{store: store, opts: opts, log: log}
}

// Open returns the stores of workspace id. Keys are stored as "<id>:<key>".
func (f *WorkspaceFactory) Open(id string) ports.Workspace {
	kv := namespaced{inner: f.store, prefix: id + ":"}
	log := f.log.With().Str("workspace", id).Logger()

	sessions := NewSessionStore(kv, f.opts.Clock, log)
	users := NewUserDirectory(kv, log)

	return ports.Workspace{
		ID:       id,
		Sessions: sessions,
		Tickets:  NewTicketStore(kv, f.opts.Clock, f.opts.IDs, log),
		Auth:     NewAuthService(users, sessions, f.opts.Hasher, f.opts.IDs, f.opts.Clock, f.opts.SessionTTL, log),
	}
}

// namespaced prefixes every key before handing it to the inner store.
type namespaced struct {
	inner  ports.KeyValueStore
	prefix string
}

func (n namespaced) GetItem(ctx context.Context, key string) (string, bool, error) {
	return n.inner.GetItem(ctx, n.prefix+key)
}

func (n namespaced) SetItem(ctx context.Context, key, value string) error {
	return n.inner.SetItem(ctx, n.prefix+key, value)
}

func (n namespaced) RemoveItem(ctx context.Context, key string) error {
	return n.inner.RemoveItem(ctx, n.prefix+key)
}
