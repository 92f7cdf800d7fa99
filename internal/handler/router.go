package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/pwgen-go/internal/middleware"
)

// NewRouter wires the API routes. ctx bounds the rate limiter's background
// cleanup.
func NewRouter(ctx context.Context, gen *GeneratorHandler, widget *WidgetHandler, rps float64, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(middleware.RateLimit(ctx, rps, burst))

		r.Post("/api/v1/generate", gen.HandleGenerate)

		r.Route("/api/v1/widget", func(r chi.Router) {
			r.Get("/", widget.HandleState)
			r.Patch("/options", widget.HandleOptions)
			r.Post("/generate", widget.HandleGenerate)
			r.Post("/copy", widget.HandleCopy)
		})
	})

	return r
}
