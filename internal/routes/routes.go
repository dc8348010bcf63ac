package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"projectcenter/internal/config"
	"projectcenter/internal/db"
	"projectcenter/internal/handlers"
	"projectcenter/internal/middleware"
	"projectcenter/internal/tracker"
)

func SetupRoutes(database *sql.DB, cfg *config.Config, t *tracker.Tracker, identity handlers.Authenticator) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "Project Center API"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if !db.Healthy(r.Context(), database) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "degraded",
				"db":     map[string]any{"status": "down", "error": "database unreachable"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"db":     map[string]any{"status": "ok"},
		})
	})

	RegisterSwaggerRoutes(r, cfg.Environment)

	revoked := middleware.NewRevocationList()

	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, cfg, identity, revoked)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, revoked))
			RegisterProjectRoutes(r, t)
			RegisterDraftRoutes(r, t)
			RegisterDashboardRoutes(r, t)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
