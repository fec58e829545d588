package ports

import "time"

// Clock supplies the current instant for expiry and timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces a statistically unique identifier per call. It is
// used for ticket ids, user ids and session tokens.
type IDGenerator interface {
	NewID() string
}

// PasswordHasher turns a password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}
