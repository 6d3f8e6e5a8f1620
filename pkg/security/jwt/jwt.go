package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers parse failures, bad signatures, algorithm
	// mismatches and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingSubject is returned when a token verifies but carries no
	// subject claim.
	ErrMissingSubject = errors.New("token has no subject claim")
)

// Generator issues and verifies HMAC-signed bearer tokens carrying a
// username subject.
type Generator struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewGenerator builds a Generator for the named HMAC algorithm (HS256, HS384
// or HS512). Any other algorithm name is rejected.
func NewGenerator(secret, algorithm string, ttl time.Duration) (*Generator, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Generator{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue mints a signed token with subject=username and exp=now+ttl.
func (g *Generator) Issue(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(g.method, claims)
	return token.SignedString(g.secret)
}

// Verify validates signature, algorithm and expiration, then returns the
// subject claim. Verification failures of any kind map to ErrInvalidToken;
// a valid token without a subject maps to ErrMissingSubject.
func (g *Generator) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{g.method.Name}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
