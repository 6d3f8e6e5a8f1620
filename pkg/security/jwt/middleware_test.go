package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsmirnov/quizgen/pkg/auth"
)

type fakeUserRepo struct {
	users map[string]auth.User
}

func (r *fakeUserRepo) Create(ctx context.Context, username, passwordHash string) (auth.User, error) {
	if _, ok := r.users[username]; ok {
		return auth.User{}, auth.ErrUserAlreadyExists
	}
	user := auth.User{ID: int64(len(r.users) + 1), Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	r.users[username] = user
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	user, ok := r.users[username]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func newTestApp(t *testing.T, gen *Generator, repo auth.UserRepository) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(NewAuthMiddleware(gen, repo, DefaultPublicPaths()))
	app.Get("/auth/me", func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		require.NotNil(t, user)
		return c.JSON(fiber.Map{"username": user.Username})
	})
	app.Post("/auth/login", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func mustGenerator(t *testing.T, ttl time.Duration) *Generator {
	t.Helper()
	gen, err := NewGenerator("test-secret", "HS256", ttl)
	require.NoError(t, err)
	return gen
}

func TestMiddlewarePublicPathSkipsAuth(t *testing.T) {
	gen := mustGenerator(t, time.Minute)
	app := newTestApp(t, gen, &fakeUserRepo{users: map[string]auth.User{}})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareMissingHeader(t *testing.T) {
	gen := mustGenerator(t, time.Minute)
	app := newTestApp(t, gen, &fakeUserRepo{users: map[string]auth.User{}})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestMiddlewareWrongScheme(t *testing.T) {
	gen := mustGenerator(t, time.Minute)
	app := newTestApp(t, gen, &fakeUserRepo{users: map[string]auth.User{}})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestMiddlewareGarbageToken(t *testing.T) {
	gen := mustGenerator(t, time.Minute)
	app := newTestApp(t, gen, &fakeUserRepo{users: map[string]auth.User{}})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestMiddlewareExpiredToken(t *testing.T) {
	expired := mustGenerator(t, -time.Minute)
	repo := &fakeUserRepo{users: map[string]auth.User{
		"alice": {ID: 1, Username: "alice"},
	}}
	app := newTestApp(t, mustGenerator(t, time.Minute), repo)

	token, err := expired.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareUnknownSubject(t *testing.T) {
	gen := mustGenerator(t, time.Minute)
	app := newTestApp(t, gen, &fakeUserRepo{users: map[string]auth.User{}})

	token, err := gen.Issue("ghost")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestMiddlewareValidToken(t *testing.T) {
	gen := mustGenerator(t, time.Minute)
	repo := &fakeUserRepo{users: map[string]auth.User{
		"alice": {ID: 1, Username: "alice"},
	}}
	app := newTestApp(t, gen, repo)

	token, err := gen.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
