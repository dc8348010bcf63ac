package routes

import (
	"github.com/go-chi/chi/v5"
	"projectcenter/internal/handlers"
	"projectcenter/internal/tracker"
)

// RegisterDraftRoutes mounts the editor. Drafts are opened under /projects.
func RegisterDraftRoutes(r chi.Router, t *tracker.Tracker) {
	handler := handlers.NewDraftHandler(t)

	r.Route("/drafts/{draftID}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Patch("/", handler.Patch)
		r.Delete("/", handler.Discard)
		r.Post("/milestones/{stage}/advance", handler.AdvanceMilestone)
		r.Post("/punch-list", handler.AddPunchItem)
		r.Delete("/punch-list/{itemID}", handler.RemovePunchItem)
		r.Post("/punch-list/{itemID}/toggle", handler.TogglePunchItem)
		r.Post("/save", handler.Save)
	})
}
