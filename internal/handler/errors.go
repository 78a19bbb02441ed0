package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/voyantra/quotation-desk/internal/domain"
)

// errorDetail is the machine-readable part of every error body.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the JSON envelope for all error replies. Fields is only
// populated for validation failures, listing every violation; Message always
// carries the first one.
type errorResponse struct {
	Error  errorDetail        `json:"error"`
	Fields domain.FieldErrors `json:"fields,omitempty"`
}

// writeJSON encodes v with the given status. Encoding failures are ignored:
// the status line has already been written and there is nothing left to do.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeValidationError replies 422 with every field violation and the first
// message as the headline.
func writeValidationError(w http.ResponseWriter, fields domain.FieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:  errorDetail{Code: "validation_error", Message: fields.Error()},
		Fields: fields,
	})
}

// writeError replies with a plain code+message body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.IntakeService.CreateQuotation: customer write failed:
// timeout" becomes "customer write failed: timeout".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.IntakeService.CreateQuotation: ",
		"service.IntakeService.SweepOrphans: ",
		"service.ListingService.GetByOwnerAndID: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}
