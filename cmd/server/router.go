package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/inkwell-api/inkwell/internal/api"
	apimiddleware "github.com/inkwell-api/inkwell/internal/api/middleware"
	"github.com/inkwell-api/inkwell/internal/config"
	"github.com/inkwell-api/inkwell/internal/platform/postgres"
	"github.com/inkwell-api/inkwell/internal/service/auth"
)

// buildRouter wires stores, services and handlers into the route tree.
// Reads are public; article and category writes sit behind the auth
// and admin gates.
func buildRouter(cfg *config.Config, db *sql.DB, log *slog.Logger) (http.Handler, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	users := postgres.NewUserStore(db, log)
	categories := postgres.NewCategoryStore(db, log)
	articles := postgres.NewArticleStore(db, log)

	homeHandler := api.NewHomeHandler()
	authHandler := api.NewAuthHandler(users, jwtService, auth.NewBcryptHasher(), auth.NewBcryptVerifier())
	categoryHandler := api.NewCategoryHandler(categories)
	articleHandler := api.NewArticleHandler(articles, categories)
	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	r.Get("/", homeHandler.Root)
	r.Get("/home", homeHandler.Home)

	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	r.Get("/articles", articleHandler.List)
	r.Get("/articles/{identifier}", articleHandler.Get)
	r.Get("/categories", categoryHandler.List)
	r.Get("/categories/{identifier}", categoryHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Use(authMiddleware.RequireAdmin)

		r.Post("/articles", articleHandler.Create)
		r.Patch("/articles/{identifier}", articleHandler.Update)
		r.Delete("/articles/{identifier}", articleHandler.Delete)

		r.Post("/categories", categoryHandler.Create)
		r.Patch("/categories/{identifier}", categoryHandler.Update)
		r.Delete("/categories/{identifier}", categoryHandler.Delete)
	})

	return r, nil
}
