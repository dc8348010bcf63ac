package routes

import (
	"github.com/go-chi/chi/v5"
	"projectcenter/internal/handlers"
	"projectcenter/internal/tracker"
)

func RegisterDashboardRoutes(r chi.Router, t *tracker.Tracker) {
	handler := handlers.NewDashboardHandler(t)

	r.Get("/dashboard", handler.Stats)
	r.Get("/changelog", handler.ChangeLog)
	r.Get("/calendar/{year}", handler.Year)
	r.Get("/calendar/{year}/{month}", handler.Month)
}
