// Package service contains the business logic for the quotation service.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/voyantra/quotation-desk/internal/domain"
)

// intakeDateLayout is the wire format for travel dates.
const intakeDateLayout = "2006-01-02"

// validate is the shared validator instance. Struct-tag rules live on
// domain.RawIntake; the custom rules below cover trim-aware checks the
// built-in tags cannot express.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so messages match what callers sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notempty: non-empty after trimming whitespace.
	mustRegister(v, "notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// trimmed_max: length limit applied to the trimmed value.
	mustRegister(v, "trimmed_max", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(strings.TrimSpace(fl.Field().String())) <= limit
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("service: register validation " + tag + ": " + err.Error())
	}
}

// ValidateIntake checks a raw intake form against the quotation rules and
// returns the well-typed intake record, or a domain.FieldErrors listing every
// violation in field order. Validation is all-or-nothing: any violation means
// nothing is persisted downstream.
//
// Empty email and phone strings are normalized to absent (nil) so the repo
// layer stores NULL rather than "".
func ValidateIntake(raw domain.RawIntake) (domain.ValidatedIntake, error) {
	raw.CustomerEmail = strings.TrimSpace(raw.CustomerEmail)
	raw.CustomerPhone = strings.TrimSpace(raw.CustomerPhone)

	if err := validate.Struct(raw); err != nil {
		return domain.ValidatedIntake{}, toFieldErrors(err)
	}

	startDate, err := time.Parse(intakeDateLayout, raw.StartDate)
	if err != nil {
		return domain.ValidatedIntake{}, domain.FieldErrors{{Field: "start_date", Message: "start date must be a valid date"}}
	}
	endDate, err := time.Parse(intakeDateLayout, raw.EndDate)
	if err != nil {
		return domain.ValidatedIntake{}, domain.FieldErrors{{Field: "end_date", Message: "end date must be a valid date"}}
	}

	return domain.ValidatedIntake{
		CustomerName:  strings.TrimSpace(raw.CustomerName),
		CustomerEmail: optional(raw.CustomerEmail),
		CustomerPhone: optional(raw.CustomerPhone),
		Destination:   strings.TrimSpace(raw.Destination),
		StartDate:     startDate,
		EndDate:       endDate,
		Adults:        raw.Adults,
		Children:      raw.Children,
		Notes:         strings.TrimSpace(raw.Notes),
	}, nil
}

// optional maps the empty string to nil so absent values are stored as NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// toFieldErrors converts validator violations into domain.FieldErrors,
// preserving the struct field order so the first message is stable.
func toFieldErrors(err error) domain.FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.FieldErrors{{Field: "", Message: err.Error()}}
	}

	out := make(domain.FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldMessage returns the user-facing message for a single violation.
// Messages are phrased per field rather than per tag so they read like a
// human wrote them.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "customer_name":
		if fe.Tag() == "notempty" {
			return "customer name is required"
		}
		return "customer name must be at most 200 characters"
	case "customer_email":
		if fe.Tag() == "email" {
			return "invalid email"
		}
		return "email must be at most 255 characters"
	case "customer_phone":
		return "phone must be at most 50 characters"
	case "destination":
		if fe.Tag() == "notempty" {
			return "destination is required"
		}
		return "destination must be at most 200 characters"
	case "start_date":
		if fe.Tag() == "required" {
			return "start date is required"
		}
		return "start date must be a valid date"
	case "end_date":
		if fe.Tag() == "required" {
			return "end date is required"
		}
		return "end date must be a valid date"
	case "adults":
		if fe.Tag() == "min" {
			return "at least 1 adult required"
		}
		return "adults must be at most 100"
	case "children":
		return "children must be between 0 and 100"
	case "notes":
		return "notes must be at most 2000 characters"
	}
	return fe.Field() + " is invalid"
}
