package ports

// Workspace bundles the stores bound to one key namespace, the server-side
// counterpart of a single browser profile's local storage.
type Workspace struct {
	ID       string
	Sessions SessionStore
	Tickets  TicketStore
	Auth     AuthService
}

// WorkspaceOpener binds the stores to a namespace. Opening is cheap and
// holds no state beyond the namespace itself.
type WorkspaceOpener interface {
	Open(id string) Workspace
}
