package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/todo-api/internal/api"
	apiMiddleware "github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
)

// Rate limit for the unauthenticated auth endpoints, per client IP.
const (
	authRateLimitRPS   = 5
	authRateLimitBurst = 10
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	todoHandler := api.NewTodoHandler(app.todoService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public, rate limited)
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RateLimit(authRateLimitRPS, authRateLimitBurst))
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/profile", authHandler.Profile)

			// The static statistics route is registered before the {id}
			// route so it is never parsed as a todo ID.
			r.Get("/todos/statistics", todoHandler.Statistics)

			r.Post("/todos", todoHandler.Create)
			r.Get("/todos", todoHandler.List)
			r.Get("/todos/{id}", todoHandler.GetByID)
			r.Put("/todos/{id}", todoHandler.Update)
			r.Delete("/todos/{id}", todoHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports liveness along with the current server time and
// uptime in seconds.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(app.startTime).Seconds(),
	})
}
