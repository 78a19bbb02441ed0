package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/repo"
)

// quotationFixture returns a domain.Quotation referencing customerID with
// sensible defaults for tests.
func quotationFixture(ownerID, customerID uuid.UUID) domain.Quotation {
	return domain.Quotation{
		OwnerID:     ownerID,
		CustomerID:  customerID,
		Destination: "Dubai, UAE",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Adults:      2,
		Children:    1,
		Notes:       "Window seats preferred",
	}
}

// createCustomer persists a fixture customer and returns it.
func createCustomer(t *testing.T, r repo.CustomerRepo, ownerID uuid.UUID) domain.Customer {
	t.Helper()
	c, err := r.Create(context.Background(), customerFixture(ownerID))
	require.NoError(t, err)
	return c
}

func TestQuotationRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	customers := repo.NewCustomerRepo(tx)
	quotations := repo.NewQuotationRepo(tx)
	ctx := context.Background()
	ownerID := uuid.New()

	customer := createCustomer(t, customers, ownerID)

	input := quotationFixture(ownerID, customer.ID)
	got, err := quotations.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, customer.ID, got.CustomerID)
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	assert.True(t, got.EndDate.Equal(input.EndDate), "EndDate mismatch")
	assert.Equal(t, input.Adults, got.Adults)
	assert.Equal(t, input.Children, got.Children)
	assert.Equal(t, input.Notes, got.Notes)
	assert.Equal(t, domain.StatusDraft, got.Status, "status should default to draft")
	assert.Zero(t, got.TotalAmount, "total_amount should default to 0")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestQuotationRepo_Create_EmptyNotesStoredAsNull(t *testing.T) {
	tx := newTestTx(t)
	customers := repo.NewCustomerRepo(tx)
	quotations := repo.NewQuotationRepo(tx)
	ctx := context.Background()
	ownerID := uuid.New()

	customer := createCustomer(t, customers, ownerID)
	input := quotationFixture(ownerID, customer.ID)
	input.Notes = ""

	got, err := quotations.Create(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, got.Notes)

	// The column itself must be NULL, not ''.
	var isNull bool
	err = tx.QueryRow(ctx,
		`SELECT notes IS NULL FROM quotations WHERE id = $1`, got.ID).Scan(&isNull)
	require.NoError(t, err)
	assert.True(t, isNull, "empty notes should be stored as NULL")
}

func TestQuotationRepo_Create_UnknownCustomer(t *testing.T) {
	quotations := repo.NewQuotationRepo(newTestTx(t))
	ctx := context.Background()

	// customer_id must reference an existing customer row.
	_, err := quotations.Create(ctx, quotationFixture(uuid.New(), uuid.New()))

	assert.Error(t, err, "foreign key violation expected")
}

func TestQuotationRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	customers := repo.NewCustomerRepo(tx)
	quotations := repo.NewQuotationRepo(tx)
	ctx := context.Background()
	ownerID := uuid.New()

	customer := createCustomer(t, customers, ownerID)
	created, err := quotations.Create(ctx, quotationFixture(ownerID, customer.ID))
	require.NoError(t, err)

	got, err := quotations.GetByID(ctx, ownerID, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, customer.Name, got.CustomerName)
	require.NotNil(t, got.CustomerEmail)
	assert.Equal(t, *customer.Email, *got.CustomerEmail)
}

func TestQuotationRepo_GetByID_NotFound(t *testing.T) {
	quotations := repo.NewQuotationRepo(newTestTx(t))

	_, err := quotations.GetByID(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuotationRepo_ListByOwner(t *testing.T) {
	tx := newTestTx(t)
	customers := repo.NewCustomerRepo(tx)
	quotations := repo.NewQuotationRepo(tx)
	ctx := context.Background()
	ownerID := uuid.New()

	customer := createCustomer(t, customers, ownerID)

	first := quotationFixture(ownerID, customer.ID)
	first.Destination = "Lisbon, Portugal"
	firstCreated, err := quotations.Create(ctx, first)
	require.NoError(t, err)

	second := quotationFixture(ownerID, customer.ID)
	second.Destination = "Kyoto, Japan"
	_, err = quotations.Create(ctx, second)
	require.NoError(t, err)

	// now() is frozen within a transaction, so both rows share a created_at.
	// Backdate the first row to make the DESC ordering observable.
	_, err = tx.Exec(ctx,
		`UPDATE quotations SET created_at = created_at - interval '1 hour' WHERE id = $1`,
		firstCreated.ID)
	require.NoError(t, err)

	got, err := quotations.ListByOwner(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by created_at DESC — the later insert comes first.
	assert.Equal(t, "Kyoto, Japan", got[0].Destination)
	assert.Equal(t, "Lisbon, Portugal", got[1].Destination)

	for _, qc := range got {
		assert.Equal(t, customer.Name, qc.CustomerName, "join should carry the customer name")
	}
}

func TestQuotationRepo_ListByOwner_ScopedToOwner(t *testing.T) {
	tx := newTestTx(t)
	customers := repo.NewCustomerRepo(tx)
	quotations := repo.NewQuotationRepo(tx)
	ctx := context.Background()
	ownerID := uuid.New()

	customer := createCustomer(t, customers, ownerID)
	_, err := quotations.Create(ctx, quotationFixture(ownerID, customer.ID))
	require.NoError(t, err)

	got, err := quotations.ListByOwner(ctx, uuid.New())

	require.NoError(t, err)
	assert.Empty(t, got, "another owner's listing must not include the row")
}

func TestQuotationRepo_ListByOwnerPaged(t *testing.T) {
	tx := newTestTx(t)
	customers := repo.NewCustomerRepo(tx)
	quotations := repo.NewQuotationRepo(tx)
	ctx := context.Background()
	ownerID := uuid.New()

	customer := createCustomer(t, customers, ownerID)
	for i := 0; i < 3; i++ {
		_, err := quotations.Create(ctx, quotationFixture(ownerID, customer.ID))
		require.NoError(t, err)
	}

	page, total, err := quotations.ListByOwnerPaged(ctx, ownerID, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 2)

	rest, total, err := quotations.ListByOwnerPaged(ctx, ownerID, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rest, 1)
}
