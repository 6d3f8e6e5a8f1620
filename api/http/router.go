package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nsmirnov/quizgen/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The auth middleware is
// installed app-wide; public paths are skipped inside it, not here.
func Register(app *fiber.App, authMW fiber.Handler, auth *handlers.AuthHandler, quiz *handlers.QuizHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Use(authMW)

	a := app.Group("/auth")
	a.Post("/signup", auth.Signup)
	a.Post("/login", auth.Login)
	a.Get("/me", auth.Me)

	q := app.Group("/quiz")
	q.Post("/", quiz.Generate)
}
