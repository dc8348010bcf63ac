package routes

import (
	"projectcenter/internal/handlers"
	"projectcenter/internal/tracker"

	"github.com/go-chi/chi/v5"
)

func RegisterProjectRoutes(r chi.Router, t *tracker.Tracker) {
	handler := handlers.NewProjectHandler(t)
	drafts := handlers.NewDraftHandler(t)

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		// static segment first so it never reaches {id}
		r.Get("/punch-list", handler.PunchList)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Replace)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
		r.Post("/{id}/drafts", drafts.Open)
		r.Post("/{id}/punch-list/{itemID}/toggle", handler.TogglePunchItem)
		r.Post("/{id}/punch-list/{itemID}/attachments", handler.UploadAttachment)
		r.Delete("/{id}/punch-list/{itemID}/attachments/{attachmentID}", handler.DeleteAttachment)
	})
}
