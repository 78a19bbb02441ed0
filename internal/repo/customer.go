// Package repo contains all database access logic for the quotation service.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/voyantra/quotation-desk/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CustomerRepo defines the persistence operations for Customers.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CustomerRepo interface {
	// Create inserts a new customer and returns the persisted record (with
	// DB-generated id and created_at populated). Nil Email/Phone become NULL.
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)

	// GetByID retrieves a single customer owned by ownerID.
	// Returns domain.ErrNotFound if no such customer exists for that owner.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Customer, error)

	// DeleteOrphans removes every customer of ownerID that no quotation
	// references, returning the number of rows deleted. Zero deletions is
	// not an error.
	DeleteOrphans(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// pgCustomerRepo is the Postgres implementation of CustomerRepo.
type pgCustomerRepo struct {
	db db
}

// NewCustomerRepo constructs a CustomerRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCustomerRepo(db db) CustomerRepo {
	return &pgCustomerRepo{db: db}
}

// Create inserts a new customer row and returns the full persisted record.
func (r *pgCustomerRepo) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	const q = `
		INSERT INTO customers (user_id, name, email, phone)
		VALUES (@user_id, @name, @email, @phone)
		RETURNING id, user_id, name, email, phone, created_at`

	args := pgx.NamedArgs{
		"user_id": customer.OwnerID,
		"name":    customer.Name,
		"email":   customer.Email, // nil becomes NULL
		"phone":   customer.Phone,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a customer by primary key, scoped to its owner.
func (r *pgCustomerRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Customer, error) {
	const q = `
		SELECT id, user_id, name, email, phone, created_at
		FROM customers
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": ownerID})
	result, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.GetByID: %w", err)
	}
	return result, nil
}

// DeleteOrphans removes customers of ownerID with no referencing quotation.
func (r *pgCustomerRepo) DeleteOrphans(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const q = `
		DELETE FROM customers c
		WHERE c.user_id = @user_id
		AND NOT EXISTS (SELECT 1 FROM quotations q WHERE q.customer_id = c.id)`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("repo.CustomerRepo.DeleteOrphans: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanCustomer maps a single database row into a domain.Customer.
// It handles the UUID and nullable email/phone conversions.
func scanCustomer(s scanner) (domain.Customer, error) {
	var (
		c     domain.Customer
		id    pgtype.UUID
		owner pgtype.UUID
		email pgtype.Text
		phone pgtype.Text
	)

	err := s.Scan(&id, &owner, &c.Name, &email, &phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, domain.ErrNotFound
		}
		return domain.Customer{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.OwnerID = uuid.UUID(owner.Bytes)
	if email.Valid {
		e := email.String
		c.Email = &e
	}
	if phone.Valid {
		p := phone.String
		c.Phone = &p
	}

	return c, nil
}
