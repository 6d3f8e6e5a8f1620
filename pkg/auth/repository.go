package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	// Create persists a new user; the backing store assigns ID and CreatedAt.
	// Returns ErrUserAlreadyExists if the username is taken.
	Create(ctx context.Context, username, passwordHash string) (User, error)
	// GetByUsername performs an exact-match, case-sensitive lookup.
	GetByUsername(ctx context.Context, username string) (User, error)
}
