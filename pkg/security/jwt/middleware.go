package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nsmirnov/quizgen/pkg/auth"
)

const userLocalsKey = "currentUser"

// PublicPaths is the allow-list of routes reachable without a token:
// exact-match paths plus prefixes for the documentation surface.
type PublicPaths struct {
	Exact    map[string]struct{}
	Prefixes []string
}

// DefaultPublicPaths covers signup, login, probes and the docs endpoints.
func DefaultPublicPaths() PublicPaths {
	return PublicPaths{
		Exact: map[string]struct{}{
			"/auth/signup":  {},
			"/auth/login":   {},
			"/openapi.json": {},
			"/health":       {},
			"/ready":        {},
		},
		Prefixes: []string{"/docs", "/swagger"},
	}
}

func (p PublicPaths) contains(path string) bool {
	if _, ok := p.Exact[path]; ok {
		return true
	}
	for _, prefix := range p.Prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWTs and
// resolves the subject to a stored user. On success the user is attached to
// the request via Locals and retrievable with CurrentUser. Every rejection is
// a 401 carrying a "WWW-Authenticate: Bearer" challenge.
func NewAuthMiddleware(gen *Generator, users auth.UserRepository, public PublicPaths) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if public.contains(c.Path()) {
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return challenge(c, "Missing or invalid Authorization header")
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		// Generic message on purpose: do not reveal which check failed.
		username, err := gen.Verify(tokenStr)
		if err != nil {
			return challenge(c, "Invalid or expired token")
		}

		// One short-lived store read scoped to verification only.
		user, err := users.GetByUsername(c.Context(), username)
		if err != nil {
			return challenge(c, "User not found")
		}

		c.Locals(userLocalsKey, &user)
		return c.Next()
	}
}

// CurrentUser returns the identity attached by the auth middleware, or nil on
// public routes.
func CurrentUser(c *fiber.Ctx) *auth.User {
	user, _ := c.Locals(userLocalsKey).(*auth.User)
	return user
}

func challenge(c *fiber.Ctx, detail string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"detail": detail})
}
