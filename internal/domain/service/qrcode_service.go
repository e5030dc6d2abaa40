package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a pickup-ticket QR code for a meal request
	GeneratePickupQR(requestID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the request ID
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
