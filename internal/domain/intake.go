package domain

import "time"

// RawIntake is the untyped form payload submitted when creating a quotation.
// String fields arrive exactly as typed by the user; dates are "2006-01-02"
// strings. Validation rules live in the service layer.
type RawIntake struct {
	CustomerName  string `json:"customer_name" validate:"notempty,trimmed_max=200"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email,max=255"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,trimmed_max=50"`
	Destination   string `json:"destination" validate:"notempty,trimmed_max=200"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Adults        int    `json:"adults" validate:"min=1,max=100"`
	Children      int    `json:"children" validate:"min=0,max=100"`
	Notes         string `json:"notes" validate:"max=2000"`
}

// ValidatedIntake is the well-typed result of validating a RawIntake.
// Name and Destination are trimmed; Email and Phone are nil when the raw
// value was empty, so the repo layer stores NULL rather than "".
type ValidatedIntake struct {
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Adults        int
	Children      int
	Notes         string
}

// FieldError identifies a single failing intake field with a message fit for
// direct display to the user.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every rule violation found in one validation pass.
// It satisfies errors.Is(err, ErrValidation) so callers can branch on the
// sentinel without caring about the concrete type.
type FieldErrors []FieldError

// Error returns the first violation's message — the one callers surface to
// the user.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	return e[0].Message
}

// Is reports whether target is the ErrValidation sentinel.
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
