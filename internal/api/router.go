package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/quotewall/backend/internal/api/handlers"
	"github.com/quotewall/backend/internal/config"
	"github.com/quotewall/backend/internal/metrics"
	"github.com/quotewall/backend/internal/middleware"
	"github.com/quotewall/backend/internal/models"
)

type RouterDeps struct {
	Cfg     config.Config
	Session *middleware.SessionMiddleware
	Auth    *handlers.AuthHandler
	Quotes  *handlers.QuoteHandler
	Users   *handlers.UserHandler
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(middleware.HTTPMetrics)
	r.Use(d.Session.LoadSession)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// auth flows
	r.Post("/register", d.Auth.Register)
	r.Post("/login", d.Auth.Login)
	r.Post("/logout", d.Auth.Logout)

	// any logged-in user
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireTier(models.RoleUser))
		r.Get("/", d.Quotes.Feed)
		r.Post("/like/{id}", d.Quotes.Like)
	})

	// editor and up
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireTier(models.RoleEditor))
		r.Post("/add", d.Quotes.Add)
		r.Post("/delete/{id}", d.Quotes.Delete)
	})

	// admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireTier(models.RoleAdmin))
		r.Get("/edit/{id}", d.Quotes.EditForm)
		r.Post("/edit/{id}", d.Quotes.Edit)
		r.Route("/users", func(r chi.Router) {
			r.Get("/", d.Users.List)
			r.Post("/{id}/role", d.Users.SetRole)
			r.Post("/{id}/delete", d.Users.Delete)
			r.Post("/{id}/update", d.Users.Update)
		})
	})

	return r
}
