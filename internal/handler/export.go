// Package handler — export.go implements GET /quotations/export.
// Returns all quotations as a flat table, one row per quotation with the
// customer fields inlined. Supports ?format=csv; default is JSON.
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/middleware"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"quotation_id", "customer_name", "customer_email", "destination",
	"travel_start_date", "travel_end_date", "adults", "children",
	"status", "total_amount", "created_at",
}

// ExportQuotations handles GET /quotations/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportQuotations(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "owner identity missing")
		return
	}

	rows, err := s.listing.Export(r.Context(), ownerID)
	if err != nil {
		slog.ErrorContext(r.Context(), "quotation export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, exportJSONRows(rows))
}

// writeCSV encodes rows as CSV with a fixed header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(csvRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="quotations.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// csvRecord encodes a domain.ExportRow as a flat string slice in csvHeaders order.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.QuotationID,
		r.CustomerName,
		r.CustomerEmail,
		r.Destination,
		r.StartDate,
		r.EndDate,
		strconv.Itoa(r.Adults),
		strconv.Itoa(r.Children),
		r.Status,
		fmt.Sprintf("%.2f", r.TotalAmount),
		r.CreatedAt,
	}
}

// exportJSONRow mirrors domain.ExportRow with JSON field names; empty
// optional values are omitted.
type exportJSONRow struct {
	QuotationID   string  `json:"quotation_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Destination   string  `json:"destination"`
	StartDate     string  `json:"travel_start_date"`
	EndDate       string  `json:"travel_end_date"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	CreatedAt     string  `json:"created_at"`
}

func exportJSONRows(rows []domain.ExportRow) []exportJSONRow {
	out := make([]exportJSONRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, exportJSONRow(r))
	}
	return out
}
