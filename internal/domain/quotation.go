package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a quotation.
// New quotations always start as StatusDraft; the transitions between the
// other states belong to approval workflows outside this service.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Quotation is a draft travel proposal for a customer: destination, travel
// dates, party size, and a monetary total. A quotation references exactly one
// customer, set at creation and never reassigned.
type Quotation struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"user_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"travel_start_date"`
	EndDate     time.Time `json:"travel_end_date"`
	Adults      int       `json:"number_of_adults"`
	Children    int       `json:"number_of_children"`
	Notes       string    `json:"notes,omitempty"`
	Status      Status    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuotationWithCustomer is a quotation joined with the owning customer's
// name and email, as returned by listing queries. The email is carried for
// completeness but is not used by the presentation layer.
type QuotationWithCustomer struct {
	Quotation
	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email,omitempty"`
}
