package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes registration/authentication behavior.
type AuthUseCase interface {
	Signup(ctx context.Context, username, password string) (User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	// Duplicate usernames are resolved by the store's uniqueness constraint,
	// so a losing concurrent signup surfaces as ErrUserAlreadyExists.
	return s.repo.Create(ctx, username, string(passwordHash))
}

// Login returns a bearer token for valid credentials. Unknown user and wrong
// password both map to ErrInvalidCredentials so callers cannot tell them apart.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.Username)
}
