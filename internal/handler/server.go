// Package handler implements the HTTP layer of the quotation service.
// All handlers are methods on Server; methods are split into files by
// concern (quotation.go, export.go, health.go) but share the same struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyantra/quotation-desk/internal/domain"
)

// IntakeServicer defines the write-side operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type IntakeServicer interface {
	Submit(ctx context.Context, ownerID uuid.UUID, raw domain.RawIntake) (domain.Quotation, error)
	SweepOrphans(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// ListingServicer defines the read-side operations the handlers depend on.
type ListingServicer interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.QuotationWithCustomer, error)
	ListByOwnerPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.QuotationWithCustomer, int64, error)
	GetByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (domain.QuotationWithCustomer, error)
	Export(ctx context.Context, ownerID uuid.UUID) ([]domain.ExportRow, error)
}

// PDFGenerator renders a single quotation as a PDF document.
type PDFGenerator interface {
	Generate(q domain.QuotationWithCustomer) ([]byte, error)
}

// Server holds the handler dependencies. Wire it into a router with Routes.
type Server struct {
	intake  IntakeServicer
	listing ListingServicer
	pdf     PDFGenerator
}

// NewServer constructs the Server with all its dependencies.
func NewServer(intake IntakeServicer, listing ListingServicer, pdf PDFGenerator) *Server {
	return &Server{intake: intake, listing: listing, pdf: pdf}
}
