package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing customer name, adults out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCustomerWrite marks a persistence failure on the first intake write.
// Nothing has been persisted when this is returned; the whole intake can be
// retried safely.
var ErrCustomerWrite = errors.New("customer write failed")

// ErrQuotationWrite marks a persistence failure on the second intake write.
// The customer from the first write remains persisted (an orphan) — there is
// no compensating delete inside the intake itself.
var ErrQuotationWrite = errors.New("quotation write failed")
