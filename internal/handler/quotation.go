package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/middleware"
	"github.com/voyantra/quotation-desk/internal/present"
)

// CreateQuotation handles POST /quotations: the full intake path of
// validating the raw form payload and persisting the customer+quotation pair.
func (s *Server) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "owner identity missing")
		return
	}

	var raw domain.RawIntake
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body is not valid JSON")
		return
	}

	created, err := s.intake.Submit(r.Context(), ownerID, raw)
	if err != nil {
		var fields domain.FieldErrors
		switch {
		case errors.As(err, &fields):
			writeValidationError(w, fields)
		case errors.Is(err, domain.ErrCustomerWrite), errors.Is(err, domain.ErrQuotationWrite):
			slog.ErrorContext(r.Context(), "quotation intake write failed", "error", err)
			writeError(w, http.StatusBadGateway, "write_failed", unwrapMessage(err))
		default:
			slog.ErrorContext(r.Context(), "quotation intake failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListQuotations handles GET /quotations, returning display-ready rows.
//
// Without query parameters every quotation of the owner is returned, most
// recent first. With ?page= / ?limit= the response carries one page plus a
// pagination block.
//
// The read is best-effort: a retrieval failure is logged and answered with an
// empty listing so the caller's view degrades instead of erroring.
func (s *Server) ListQuotations(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "owner identity missing")
		return
	}

	page := queryInt(r, "page")
	limit := queryInt(r, "limit")
	if page != nil || limit != nil {
		s.listQuotationsPaged(w, r, ownerID, domain.NewPaginationParams(page, limit))
		return
	}

	quotations, err := s.listing.ListByOwner(r.Context(), ownerID)
	if err != nil {
		slog.WarnContext(r.Context(), "quotation listing failed, serving empty list", "error", err)
		quotations = nil
	}

	writeJSON(w, http.StatusOK, listResponse{Data: present.PresentAll(quotations)})
}

func (s *Server) listQuotationsPaged(w http.ResponseWriter, r *http.Request, ownerID uuid.UUID, p domain.PaginationParams) {
	quotations, total, err := s.listing.ListByOwnerPaged(r.Context(), ownerID, p)
	if err != nil {
		slog.WarnContext(r.Context(), "quotation listing failed, serving empty list", "error", err)
		quotations, total = nil, 0
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data: present.PresentAll(quotations),
		Pagination: &pagination{
			Page:  p.Page,
			Limit: p.Limit,
			Total: total,
		},
	})
}

// GetQuotation handles GET /quotations/{id}, returning the full stored
// record joined with its customer.
func (s *Server) GetQuotation(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "owner identity missing")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "id must be a UUID")
		return
	}

	quotation, err := s.listing.GetByOwnerAndID(r.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "quotation not found")
			return
		}
		slog.ErrorContext(r.Context(), "quotation lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, quotation)
}

// GetQuotationPDF handles GET /quotations/{id}/pdf, rendering the quotation
// as a downloadable PDF document.
func (s *Server) GetQuotationPDF(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "owner identity missing")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "id must be a UUID")
		return
	}

	quotation, err := s.listing.GetByOwnerAndID(r.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "quotation not found")
			return
		}
		slog.ErrorContext(r.Context(), "quotation lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	doc, err := s.pdf.Generate(quotation)
	if err != nil {
		slog.ErrorContext(r.Context(), "quotation pdf generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "pdf generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="quotation-`+id.String()+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// SweepOrphanCustomers handles DELETE /customers/orphans: the compensating
// cleanup for customers left behind by a failed quotation write.
func (s *Server) SweepOrphanCustomers(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "owner identity missing")
		return
	}

	deleted, err := s.intake.SweepOrphans(r.Context(), ownerID)
	if err != nil {
		slog.ErrorContext(r.Context(), "orphan customer sweep failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// ---- response envelopes ----------------------------------------------------

type listResponse struct {
	Data       []present.Row `json:"data"`
	Pagination *pagination   `json:"pagination,omitempty"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// queryInt parses an integer query parameter, returning nil when the
// parameter is absent or not a number.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
