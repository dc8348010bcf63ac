package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "projectcenter/docs"
)

// RegisterSwaggerRoutes serves the API explorer everywhere except production,
// where the dashboard API is not advertised.
func RegisterSwaggerRoutes(r chi.Router, environment string) {
	if strings.EqualFold(environment, "production") {
		return
	}

	toIndex := http.RedirectHandler("/swagger/index.html", http.StatusMovedPermanently)
	r.Handle("/swagger", toIndex)
	r.Handle("/swagger/", toIndex)

	// Drafts and punch list carry many endpoints; start with every tag collapsed
	// and keep the bearer token across reloads.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.PersistAuthorization(true),
	))
}
