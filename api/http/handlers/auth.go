package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nsmirnov/quizgen/api/http/presenter"
	"github.com/nsmirnov/quizgen/pkg/auth"
	"github.com/nsmirnov/quizgen/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup registers a new account.
// @Summary Sign up
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "credentials"
// @Success 201 {object} handlers.userResponse
// @Failure 400 {object} presenter.ErrorResponse "username already taken"
// @Failure 422 {object} presenter.ErrorResponse "malformed body"
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusUnprocessableEntity, "username and password are required")
	}

	user, err := h.useCase.Signup(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserAlreadyExists) {
			return presenter.Error(c, http.StatusBadRequest, "Username already taken")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Failed to create user")
	}

	return presenter.JSON(c, http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login exchanges credentials for a bearer token.
// @Summary Log in
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "credentials"
// @Success 200 {object} handlers.tokenResponse
// @Failure 401 {object} presenter.ErrorResponse "invalid credentials"
// @Failure 422 {object} presenter.ErrorResponse "malformed body"
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusUnprocessableEntity, "username and password are required")
	}

	token, err := h.useCase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		// Same status and message for unknown user and wrong password.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "Incorrect username or password")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Failed to login")
	}

	return presenter.JSON(c, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the identity resolved by the auth middleware.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.userResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := jwt.CurrentUser(c)
	if user == nil {
		// Unreachable behind the middleware; kept as a guard.
		return presenter.Error(c, http.StatusUnauthorized, "Not authenticated")
	}
	return presenter.JSON(c, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
