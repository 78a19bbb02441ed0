package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/repo"
)

// IntakeService implements the quotation intake workflow: validating a raw
// form payload and persisting the Customer and Quotation it describes.
//
// The two writes are sequential and not wrapped in a transaction: the
// quotation insert needs the customer id generated by the first insert, and
// the repos stay storage-agnostic. When the second write fails, the customer
// from the first write remains persisted as an orphan; SweepOrphans is the
// compensating cleanup for that case.
type IntakeService struct {
	customers  repo.CustomerRepo
	quotations repo.QuotationRepo
}

// NewIntakeService constructs an IntakeService backed by the provided repos.
func NewIntakeService(customers repo.CustomerRepo, quotations repo.QuotationRepo) *IntakeService {
	return &IntakeService{customers: customers, quotations: quotations}
}

// Submit validates raw intake input and, when valid, persists the
// Customer+Quotation pair for ownerID. It is the full caller-facing intake
// operation: validation failures return domain.FieldErrors (matching
// domain.ErrValidation) before anything is written.
func (s *IntakeService) Submit(ctx context.Context, ownerID uuid.UUID, raw domain.RawIntake) (domain.Quotation, error) {
	validated, err := ValidateIntake(raw)
	if err != nil {
		return domain.Quotation{}, err
	}
	return s.CreateQuotation(ctx, ownerID, validated)
}

// CreateQuotation persists a validated intake as two dependent writes:
// the customer first, then the quotation referencing it.
//
// A failure on the first write returns domain.ErrCustomerWrite and leaves
// nothing persisted. A failure on the second returns domain.ErrQuotationWrite
// while the customer from the first write remains persisted (orphaned).
// On success the quotation starts as draft with a zero total.
func (s *IntakeService) CreateQuotation(ctx context.Context, ownerID uuid.UUID, in domain.ValidatedIntake) (domain.Quotation, error) {
	customer, err := s.customers.Create(ctx, domain.Customer{
		OwnerID: ownerID,
		Name:    in.CustomerName,
		Email:   in.CustomerEmail,
		Phone:   in.CustomerPhone,
	})
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("service.IntakeService.CreateQuotation: %w: %w", domain.ErrCustomerWrite, err)
	}

	quotation, err := s.quotations.Create(ctx, domain.Quotation{
		OwnerID:     ownerID,
		CustomerID:  customer.ID,
		Destination: in.Destination,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Adults:      in.Adults,
		Children:    in.Children,
		Notes:       in.Notes,
	})
	if err != nil {
		// The customer persists — no compensating delete here.
		return domain.Quotation{}, fmt.Errorf("service.IntakeService.CreateQuotation: %w: %w", domain.ErrQuotationWrite, err)
	}

	return quotation, nil
}

// SweepOrphans removes every customer of ownerID that no quotation
// references, returning how many were deleted. Orphans accumulate only when
// a quotation write fails after its customer write succeeded.
func (s *IntakeService) SweepOrphans(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	deleted, err := s.customers.DeleteOrphans(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("service.IntakeService.SweepOrphans: %w", err)
	}
	return deleted, nil
}
