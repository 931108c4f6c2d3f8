package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	db        *sql.DB
	startTime time.Time

	userStore store.UserStore
	todoStore store.TodoStore

	jwtService  auth.JWTService
	userService service.UserService
	todoService service.TodoService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logging, and the database connection must
// already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		startTime: time.Now(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.todoStore = postgres.NewPostgresTodoStore(db, logger)

	app.userService = service.NewUserService(
		app.userStore,
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		auth.NewBcryptVerifier(),
		logger,
	)
	app.todoService = service.NewTodoService(app.todoStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
