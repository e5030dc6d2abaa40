// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment records one confirmed membership payment. Records are append-only;
// the normal flow never mutates or deletes them.
type Payment struct {
	ID            uuid.UUID      `json:"id"`             // The unique ID for this payment record.
	UserEmail     string         `json:"user_email"`     // Email of the paying user.
	Amount        float64        `json:"amount"`         // Amount paid, in the platform currency.
	Package       MembershipTier `json:"package"`        // The purchased membership tier.
	TransactionID string         `json:"transaction_id"` // Payment processor transaction identifier.
	Status        string         `json:"status"`         // Processor-reported status, e.g. "succeeded".
	CreatedAt     time.Time      `json:"created_at"`     // Timestamp of when the payment was confirmed.
}
