package domain

import "errors"

var (
	ErrUserExists         = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is an entry of the user directory. Password holds whatever the
// configured hasher produced; with the plain hasher it is the password itself.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Ref returns the identity stored in a session.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Email: u.Email, Name: u.Name}
}
