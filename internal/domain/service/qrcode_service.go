package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads order pickup codes.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG pickup code for the order
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR reads the order id back from the encoded payload
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
