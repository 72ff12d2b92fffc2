package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates QR code images for order pickup.
type QRCodeService interface {
	// GeneratePickupQR generates a PNG QR code encoding the order reference.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR extracts the order ID from scanned QR data.
	ParsePickupQR(data string) (uuid.UUID, error)
}
