package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/service"
)

// validIntake returns a fully valid form payload. Tests mutate one field at
// a time to exercise individual rules.
func validIntake() domain.RawIntake {
	return domain.RawIntake{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+971 50 123 4567",
		Destination:   "Dubai, UAE",
		StartDate:     "2025-06-01",
		EndDate:       "2025-06-10",
		Adults:        2,
		Children:      1,
		Notes:         "Window seats preferred",
	}
}

// fieldErrors unwraps err into domain.FieldErrors, failing the test if the
// error is of any other kind.
func fieldErrors(t *testing.T, err error) domain.FieldErrors {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(domain.FieldErrors)
	require.True(t, ok, "expected domain.FieldErrors, got %T", err)
	return fe
}

// ---- happy path ------------------------------------------------------------

func TestValidateIntake_Valid(t *testing.T) {
	got, err := service.ValidateIntake(validIntake())

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CustomerName)
	assert.Equal(t, "Dubai, UAE", got.Destination)
	require.NotNil(t, got.CustomerEmail)
	assert.Equal(t, "jane@example.com", *got.CustomerEmail)
	require.NotNil(t, got.CustomerPhone)
	assert.Equal(t, "+971 50 123 4567", *got.CustomerPhone)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), got.EndDate)
	assert.Equal(t, 2, got.Adults)
	assert.Equal(t, 1, got.Children)
}

func TestValidateIntake_TrimsNameAndDestination(t *testing.T) {
	raw := validIntake()
	raw.CustomerName = "  Jane Doe  "
	raw.Destination = "\tDubai, UAE\n"

	got, err := service.ValidateIntake(raw)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CustomerName)
	assert.Equal(t, "Dubai, UAE", got.Destination)
}

func TestValidateIntake_EmptyEmailAndPhoneBecomeNil(t *testing.T) {
	raw := validIntake()
	raw.CustomerEmail = ""
	raw.CustomerPhone = "   " // whitespace-only counts as absent

	got, err := service.ValidateIntake(raw)

	require.NoError(t, err)
	assert.Nil(t, got.CustomerEmail)
	assert.Nil(t, got.CustomerPhone)
}

// ---- per-field violations --------------------------------------------------

func TestValidateIntake_FieldViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.RawIntake)
		field   string
		message string
	}{
		{
			name:    "empty name",
			mutate:  func(r *domain.RawIntake) { r.CustomerName = "" },
			field:   "customer_name",
			message: "customer name is required",
		},
		{
			name:    "whitespace-only name",
			mutate:  func(r *domain.RawIntake) { r.CustomerName = "   " },
			field:   "customer_name",
			message: "customer name is required",
		},
		{
			name:    "name too long",
			mutate:  func(r *domain.RawIntake) { r.CustomerName = longString(201) },
			field:   "customer_name",
			message: "customer name must be at most 200 characters",
		},
		{
			name:    "invalid email",
			mutate:  func(r *domain.RawIntake) { r.CustomerEmail = "not-an-email" },
			field:   "customer_email",
			message: "invalid email",
		},
		{
			name:    "phone too long",
			mutate:  func(r *domain.RawIntake) { r.CustomerPhone = longString(51) },
			field:   "customer_phone",
			message: "phone must be at most 50 characters",
		},
		{
			name:    "empty destination",
			mutate:  func(r *domain.RawIntake) { r.Destination = " " },
			field:   "destination",
			message: "destination is required",
		},
		{
			name:    "missing start date",
			mutate:  func(r *domain.RawIntake) { r.StartDate = "" },
			field:   "start_date",
			message: "start date is required",
		},
		{
			name:    "malformed start date",
			mutate:  func(r *domain.RawIntake) { r.StartDate = "06/01/2025" },
			field:   "start_date",
			message: "start date must be a valid date",
		},
		{
			name:    "missing end date",
			mutate:  func(r *domain.RawIntake) { r.EndDate = "" },
			field:   "end_date",
			message: "end date is required",
		},
		{
			name:    "zero adults",
			mutate:  func(r *domain.RawIntake) { r.Adults = 0 },
			field:   "adults",
			message: "at least 1 adult required",
		},
		{
			name:    "too many adults",
			mutate:  func(r *domain.RawIntake) { r.Adults = 101 },
			field:   "adults",
			message: "adults must be at most 100",
		},
		{
			name:    "negative children",
			mutate:  func(r *domain.RawIntake) { r.Children = -1 },
			field:   "children",
			message: "children must be between 0 and 100",
		},
		{
			name:    "notes too long",
			mutate:  func(r *domain.RawIntake) { r.Notes = longString(2001) },
			field:   "notes",
			message: "notes must be at most 2000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validIntake()
			tt.mutate(&raw)

			_, err := service.ValidateIntake(raw)

			assert.ErrorIs(t, err, domain.ErrValidation)
			fe := fieldErrors(t, err)
			require.NotEmpty(t, fe)
			assert.Equal(t, tt.field, fe[0].Field)
			assert.Equal(t, tt.message, fe[0].Message)
			// Error() surfaces the first violation's message.
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateIntake_CollectsAllViolations(t *testing.T) {
	raw := validIntake()
	raw.CustomerName = ""
	raw.Destination = ""
	raw.Adults = 0

	_, err := service.ValidateIntake(raw)

	fe := fieldErrors(t, err)
	require.Len(t, fe, 3)
	// Violations come back in struct-field order, so the first message — the
	// one shown to the user — is deterministic.
	assert.Equal(t, "customer_name", fe[0].Field)
	assert.Equal(t, "destination", fe[1].Field)
	assert.Equal(t, "adults", fe[2].Field)
}

func TestValidateIntake_ZeroChildrenValid(t *testing.T) {
	raw := validIntake()
	raw.Children = 0

	_, err := service.ValidateIntake(raw)

	assert.NoError(t, err)
}

func TestValidateIntake_EndBeforeStartAllowed(t *testing.T) {
	// Date ordering is deliberately not validated; the form never enforced it.
	raw := validIntake()
	raw.StartDate = "2025-06-10"
	raw.EndDate = "2025-06-01"

	_, err := service.ValidateIntake(raw)

	assert.NoError(t, err)
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
