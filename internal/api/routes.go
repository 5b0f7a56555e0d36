package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.ListContacts)
			r.Post("/", h.CreateContact)
			r.Post("/bulk", h.BulkUpsertContacts)
			r.Delete("/{id}", h.DeleteContact)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.ListTemplates)
			r.Post("/", h.CreateTemplate)
			r.Put("/{id}", h.UpdateTemplate)
			r.Delete("/{id}", h.DeleteTemplate)
		})

		r.Route("/inbox", func(r chi.Router) {
			r.Get("/drafts", h.ListDrafts)
			r.Get("/messages/{contactId}", h.ContactHistory)
			r.Post("/simulate-incoming", h.SimulateIncoming)
			r.Post("/drafts/{id}/approve", h.ApproveDraft)
			r.Delete("/drafts/{id}", h.RejectDraft)
		})

		r.Route("/campaign", func(r chi.Router) {
			r.Post("/send", h.SendCampaign)
			r.Post("/preview", h.PreviewCampaign)
		})
	})

	return r
}
