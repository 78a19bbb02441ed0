// Package domain contains the core data types for the quotation service.
// This package has zero external dependencies beyond uuid and time and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the person a quotation is prepared for.
// Email and Phone are nil when the customer did not supply them — an absent
// value is stored as NULL, never as an empty string.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
