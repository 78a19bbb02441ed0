// Package present maps persisted quotations into display-ready rows.
// Everything in this package is a pure function of its input: no clock, no
// locale detection, no I/O, so presenting the same quotation twice always
// yields the same row.
package present

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/voyantra/quotation-desk/internal/domain"
)

// Row is the read-only projection of a quotation used by card-style listings.
// All derived fields are pre-formatted strings so the consumer renders them
// verbatim.
type Row struct {
	ID           uuid.UUID `json:"id"`
	Destination  string    `json:"destination"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	StatusClass  string    `json:"status_class"`
	StartDate    string    `json:"start_date"`
	PartySize    string    `json:"party_size"`
	TotalAmount  string    `json:"total_amount"`
}

// Display classes for the status badge.
const (
	ClassNeutral  = "neutral"
	ClassAccent   = "accent"
	ClassPositive = "positive"
	ClassNegative = "negative"
)

// statusClasses maps each known status to its badge class.
// Unknown statuses fall back to ClassNeutral rather than failing.
var statusClasses = map[domain.Status]string{
	domain.StatusDraft:    ClassNeutral,
	domain.StatusSent:     ClassAccent,
	domain.StatusApproved: ClassPositive,
	domain.StatusRejected: ClassNegative,
}

// moneyPrinter groups the total with thousands separators ("1,234.5").
var moneyPrinter = message.NewPrinter(language.English)

// Present maps one quotation+customer pair into a display Row.
// The mapping is total: every quotation yields a fully populated row.
func Present(q domain.QuotationWithCustomer) Row {
	return Row{
		ID:           q.ID,
		Destination:  q.Destination,
		CustomerName: q.CustomerName,
		Status:       string(q.Status),
		StatusClass:  statusClass(q.Status),
		StartDate:    q.StartDate.Format("Jan 02"),
		PartySize:    PartySize(q.Adults, q.Children),
		TotalAmount:  Money(q.TotalAmount),
	}
}

// PresentAll maps a listing into rows, preserving order.
// Always returns a non-nil slice.
func PresentAll(quotations []domain.QuotationWithCustomer) []Row {
	rows := make([]Row, 0, len(quotations))
	for _, q := range quotations {
		rows = append(rows, Present(q))
	}
	return rows
}

// statusClass returns the badge class for status, defaulting to neutral for
// values outside the known set.
func statusClass(s domain.Status) string {
	if class, ok := statusClasses[s]; ok {
		return class
	}
	return ClassNeutral
}

// PartySize renders the party as "2A" or "2A, 1C" — the child count appears
// only when it is positive.
func PartySize(adults, children int) string {
	if children > 0 {
		return fmt.Sprintf("%dA, %dC", adults, children)
	}
	return fmt.Sprintf("%dA", adults)
}

// Money renders a dollar amount with locale grouping, e.g. "$12,500".
func Money(amount float64) string {
	return moneyPrinter.Sprintf("$%v", number.Decimal(amount))
}
