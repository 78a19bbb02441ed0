package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyantra/quotation-desk/internal/middleware"
	"github.com/voyantra/quotation-desk/spec"
)

// Routes mounts every handler on a chi router. Quotation and customer routes
// require the owner-identity header; health and the API spec do not.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireOwner)

		r.Post("/quotations", s.CreateQuotation)
		r.Get("/quotations", s.ListQuotations)
		r.Get("/quotations/export", s.ExportQuotations)
		r.Get("/quotations/{id}", s.GetQuotation)
		r.Get("/quotations/{id}/pdf", s.GetQuotationPDF)

		r.Delete("/customers/orphans", s.SweepOrphanCustomers)
	})

	return r
}
