// Package router wires handlers and middleware into the HTTP mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskdeck/taskdeck-server/internal/api/http/handler"
	"github.com/taskdeck/taskdeck-server/internal/api/http/middleware"
	"github.com/taskdeck/taskdeck-server/internal/logger"
	"github.com/taskdeck/taskdeck-server/internal/model"
	"github.com/taskdeck/taskdeck-server/internal/service"
)

// Router assembles the HTTP routes with their middleware chains.
type Router struct {
	authService    *service.Auth
	todoService    *service.Todo
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	todoService *service.Todo,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		todoService:    todoService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route tree. Registration and login are public;
// everything else requires a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	todoHandler := handler.NewTodo(r.todoService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.AllowContentType("application/json"))

	mux.Route("/api/auth", func(mux chi.Router) {
		mux.Post("/register", authHandler.Register)
		mux.Post("/login", authHandler.Login)

		mux.Group(func(mux chi.Router) {
			mux.Use(authenticate.Handle)
			mux.Put("/update-profile", authHandler.UpdateProfile)
		})
	})

	mux.Route("/api/todos", func(mux chi.Router) {
		mux.Use(authenticate.Handle)

		mux.Post("/", todoHandler.Create)
		mux.Get("/", todoHandler.List)
		mux.Get("/{id}", todoHandler.Get)
		mux.Delete("/{id}", todoHandler.Delete)
		mux.Patch("/{id}", todoHandler.Patch)
	})

	return mux
}
