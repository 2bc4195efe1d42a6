package qrcode

import (
	"encoding/json"

	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// payloadTypeOrderPickup marks codes shown at the counter when collecting an order.
const payloadTypeOrderPickup = "order_pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the JSON payload encoded into a pickup code
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a QR code service. Unknown levels fall back to Medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateOrderQR renders the pickup code for an order as PNG
func (s *qrcodeService) GenerateOrderQR(orderID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(QRCodeData{
		OrderID: orderID.String(),
		Type:    payloadTypeOrderPickup,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR decodes a scanned payload and returns the order id
func (s *qrcodeService) ParseOrderQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != payloadTypeOrderPickup {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
