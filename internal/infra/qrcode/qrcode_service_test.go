package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Unknown falls back to medium", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		pngBytes, err := svc.GenerateOrderQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(pngBytes), 4)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, pngBytes[:4])
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: "order_pickup"})
	require.NoError(t, err)

	parsed, err := svc.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseOrderQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"order_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad uuid", `{"order_id":"not-a-uuid","type":"order_pickup"}`, "failed to parse order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
