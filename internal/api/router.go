package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/crud-auth-be/internal/api/handlers"
	"github.com/isdelr/crud-auth-be/internal/services"
)

// NewRouter creates and configures a new Chi router serving the account API.
func NewRouter(accountService services.AccountServiceProvider, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	accountHandler := handlers.NewAccountHandler(accountService)

	// Integration-test greeting
	r.Get("/crud", handlers.Hello)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", accountHandler.Register)
		r.Post("/login", accountHandler.Login)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/me", accountHandler.Me)
		r.Delete("/{id}", accountHandler.Delete)
	})

	return r
}
