package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/repo"
)

// ListingService implements the read side: quotations joined with their
// customer, ordered for display.
type ListingService struct {
	quotations repo.QuotationRepo
}

// NewListingService constructs a ListingService backed by the provided repo.
func NewListingService(quotations repo.QuotationRepo) *ListingService {
	return &ListingService{quotations: quotations}
}

// ListByOwner returns all of the owner's quotations, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.QuotationWithCustomer, error) {
	quotations, err := s.quotations.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.ListByOwner: %w", err)
	}
	if quotations == nil {
		return []domain.QuotationWithCustomer{}, nil
	}
	return quotations, nil
}

// ListByOwnerPaged returns one page of the owner's quotations and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ListingService) ListByOwnerPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.QuotationWithCustomer, int64, error) {
	quotations, total, err := s.quotations.ListByOwnerPaged(ctx, ownerID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ListingService.ListByOwnerPaged: %w", err)
	}
	if quotations == nil {
		quotations = []domain.QuotationWithCustomer{}
	}
	return quotations, total, nil
}

// GetByOwnerAndID returns a single quotation joined with its customer.
// Returns domain.ErrNotFound when the owner has no quotation with that id.
func (s *ListingService) GetByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (domain.QuotationWithCustomer, error) {
	quotation, err := s.quotations.GetByID(ctx, ownerID, id)
	if err != nil {
		return domain.QuotationWithCustomer{}, fmt.Errorf("service.ListingService.GetByOwnerAndID: %w", err)
	}
	return quotation, nil
}

// Export returns all of the owner's quotations flattened into export rows,
// in the same most-recent-first order as ListByOwner.
func (s *ListingService) Export(ctx context.Context, ownerID uuid.UUID) ([]domain.ExportRow, error) {
	quotations, err := s.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ListingService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(quotations))
	for _, qc := range quotations {
		row := domain.ExportRow{
			QuotationID:  qc.ID.String(),
			CustomerName: qc.CustomerName,
			Destination:  qc.Destination,
			StartDate:    qc.StartDate.Format("2006-01-02"),
			EndDate:      qc.EndDate.Format("2006-01-02"),
			Adults:       qc.Adults,
			Children:     qc.Children,
			Status:       string(qc.Status),
			TotalAmount:  qc.TotalAmount,
			CreatedAt:    qc.CreatedAt.UTC().Format(time.RFC3339),
		}
		if qc.CustomerEmail != nil {
			row.CustomerEmail = *qc.CustomerEmail
		}
		rows = append(rows, row)
	}
	return rows, nil
}
