package domain

import "context"

// User represents a registered account. PasswordHash holds a bcrypt hash;
// plaintext passwords are never persisted.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Public returns a copy of the user with the password hash stripped,
// safe for external exposure and session storage.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List retrieves all users with password hashes stripped
	List(ctx context.Context) ([]User, error)

	// FindByEmail retrieves a user by email (case-sensitive equality)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a new user, rejecting duplicate emails with
	// ErrAlreadyExists before any write occurs
	Create(ctx context.Context, user *User) error
}

// SessionStore holds the authenticated identity between requests,
// keyed by an opaque token. Stored users carry no password hash.
type SessionStore interface {
	// Create opens a session for the user and returns its token
	Create(ctx context.Context, user User) (string, error)

	// Get resolves a token to its user, or ErrNotFound
	Get(ctx context.Context, token string) (*User, error)

	// Delete closes a session; closing an unknown token is not an error
	Delete(ctx context.Context, token string) error
}
