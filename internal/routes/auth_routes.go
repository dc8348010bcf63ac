package routes

import (
	"github.com/go-chi/chi/v5"
	"projectcenter/internal/config"
	"projectcenter/internal/handlers"
	"projectcenter/internal/middleware"
)

// RegisterAuthRoutes mounts login publicly; logout and me need a valid token.
func RegisterAuthRoutes(router chi.Router, cfg *config.Config, identity handlers.Authenticator, revoked *middleware.RevocationList) {
	authHandler := handlers.NewAuthHandler(identity, cfg, revoked)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, revoked))
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})
}
