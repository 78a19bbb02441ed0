package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/voyantra/quotation-desk/internal/domain"
)

// QuotationRepo defines the persistence operations for Quotations.
type QuotationRepo interface {
	// Create inserts a new quotation and returns the persisted record (with
	// DB-generated id, created_at, and the defaulted status and total_amount
	// populated). The empty string for Notes is stored as NULL.
	Create(ctx context.Context, quotation domain.Quotation) (domain.Quotation, error)

	// GetByID retrieves a single quotation owned by ownerID, joined with its
	// customer's name and email.
	// Returns domain.ErrNotFound if no such quotation exists for that owner.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.QuotationWithCustomer, error)

	// ListByOwner returns all quotations of ownerID joined with their
	// customer's name and email, ordered by created_at descending.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.QuotationWithCustomer, error)

	// ListByOwnerPaged returns one page of the owner's quotations in the same
	// order as ListByOwner, plus the total row count.
	ListByOwnerPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.QuotationWithCustomer, int64, error)
}

// pgQuotationRepo is the Postgres implementation of QuotationRepo.
type pgQuotationRepo struct {
	db db
}

// NewQuotationRepo constructs a QuotationRepo backed by the provided db connection.
func NewQuotationRepo(db db) QuotationRepo {
	return &pgQuotationRepo{db: db}
}

// quotationColumns is the select list shared by every quotation query.
// The two customer columns come from the join and must stay last so that
// scanQuotation sees a stable column order.
const quotationColumns = `
	q.id, q.user_id, q.customer_id, q.destination,
	q.travel_start_date, q.travel_end_date,
	q.number_of_adults, q.number_of_children,
	q.notes, q.status, q.total_amount, q.created_at,
	c.name, c.email`

// Create inserts a new quotation row and returns the full persisted record.
// Status and total_amount are left to their column defaults (draft, 0).
func (r *pgQuotationRepo) Create(ctx context.Context, quotation domain.Quotation) (domain.Quotation, error) {
	const q = `
		INSERT INTO quotations (
			user_id, customer_id, destination,
			travel_start_date, travel_end_date,
			number_of_adults, number_of_children, notes
		)
		VALUES (
			@user_id, @customer_id, @destination,
			@travel_start_date, @travel_end_date,
			@number_of_adults, @number_of_children, NULLIF(@notes, '')
		)
		RETURNING id, user_id, customer_id, destination,
		          travel_start_date, travel_end_date,
		          number_of_adults, number_of_children,
		          notes, status, total_amount, created_at`

	args := pgx.NamedArgs{
		"user_id":            quotation.OwnerID,
		"customer_id":        quotation.CustomerID,
		"destination":        quotation.Destination,
		"travel_start_date":  quotation.StartDate,
		"travel_end_date":    quotation.EndDate,
		"number_of_adults":   quotation.Adults,
		"number_of_children": quotation.Children,
		"notes":              quotation.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanQuotationOnly(row)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("repo.QuotationRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a quotation by primary key, scoped to its owner.
func (r *pgQuotationRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.QuotationWithCustomer, error) {
	q := `
		SELECT ` + quotationColumns + `
		FROM quotations q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.id = @id AND q.user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": ownerID})
	result, err := scanQuotation(row)
	if err != nil {
		return domain.QuotationWithCustomer{}, fmt.Errorf("repo.QuotationRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwner returns all of the owner's quotations, most recent first.
func (r *pgQuotationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.QuotationWithCustomer, error) {
	q := `
		SELECT ` + quotationColumns + `
		FROM quotations q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.user_id = @user_id
		ORDER BY q.created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("repo.QuotationRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	return collectQuotations(rows, "repo.QuotationRepo.ListByOwner")
}

// ListByOwnerPaged returns one page of the owner's quotations plus the total count.
func (r *pgQuotationRepo) ListByOwnerPaged(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.QuotationWithCustomer, int64, error) {
	const countQ = `SELECT count(*) FROM quotations WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": ownerID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.QuotationRepo.ListByOwnerPaged: count: %w", err)
	}

	q := `
		SELECT ` + quotationColumns + `
		FROM quotations q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.user_id = @user_id
		ORDER BY q.created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": ownerID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.QuotationRepo.ListByOwnerPaged: %w", err)
	}
	defer rows.Close()

	quotations, err := collectQuotations(rows, "repo.QuotationRepo.ListByOwnerPaged")
	if err != nil {
		return nil, 0, err
	}
	return quotations, total, nil
}

// collectQuotations drains rows into a slice, wrapping errors with op.
func collectQuotations(rows pgx.Rows, op string) ([]domain.QuotationWithCustomer, error) {
	var quotations []domain.QuotationWithCustomer
	for rows.Next() {
		qc, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		quotations = append(quotations, qc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return quotations, nil
}

// scanQuotation maps a joined quotation+customer row into a
// domain.QuotationWithCustomer. Column order must match quotationColumns.
func scanQuotation(s scanner) (domain.QuotationWithCustomer, error) {
	var (
		qc    domain.QuotationWithCustomer
		email pgtype.Text
	)

	if err := scanInto(s, &qc.Quotation, &qc.CustomerName, &email); err != nil {
		return domain.QuotationWithCustomer{}, err
	}
	if email.Valid {
		e := email.String
		qc.CustomerEmail = &e
	}
	return qc, nil
}

// scanQuotationOnly maps a bare quotation row (no customer join), as
// returned by INSERT ... RETURNING.
func scanQuotationOnly(s scanner) (domain.Quotation, error) {
	var q domain.Quotation
	if err := scanInto(s, &q); err != nil {
		return domain.Quotation{}, err
	}
	return q, nil
}

// scanInto does the shared column-to-struct mapping for quotation rows.
// extra receives any trailing join columns (customer name, email).
func scanInto(s scanner, q *domain.Quotation, extra ...any) error {
	var (
		id       pgtype.UUID
		owner    pgtype.UUID
		customer pgtype.UUID
		start    pgtype.Date
		end      pgtype.Date
		notes    pgtype.Text
		total    pgtype.Numeric
	)

	dest := []any{
		&id, &owner, &customer, &q.Destination,
		&start, &end,
		&q.Adults, &q.Children,
		&notes, &q.Status, &total, &q.CreatedAt,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	q.ID = uuid.UUID(id.Bytes)
	q.OwnerID = uuid.UUID(owner.Bytes)
	q.CustomerID = uuid.UUID(customer.Bytes)
	q.StartDate = start.Time
	q.EndDate = end.Time
	if notes.Valid {
		q.Notes = notes.String
	}

	f, err := total.Float64Value()
	if err != nil {
		return fmt.Errorf("total_amount: %w", err)
	}
	q.TotalAmount = f.Float64

	return nil
}
