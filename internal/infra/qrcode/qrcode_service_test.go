package qrcode

import (
	"encoding/json"
	"testing"

	"tripdesk/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeService_NilConfigSection(t *testing.T) {
	service := NewQRCodeService(&config.Config{})
	assert.NotNil(t, service)

	qrBytes, err := service.GenerateBookingQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_GenerateBookingQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))
	bookingID := uuid.New()

	qrBytes, err := service.GenerateBookingQR(bookingID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateBookingQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, "M"))

			qrBytes, err := service.GenerateBookingQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseBookingQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))
	bookingID := uuid.New()

	data := QRCodeData{
		BookingID: bookingID.String(),
		Type:      "booking",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseBookingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, bookingID, parsedID)
}

func TestQRCodeService_ParseBookingQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))

	_, err := service.ParseBookingQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseBookingQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))

	data := QRCodeData{
		BookingID: uuid.New().String(),
		Type:      "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseBookingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseBookingQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))

	data := QRCodeData{
		BookingID: "not-a-valid-uuid",
		Type:      "booking",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseBookingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse booking ID")
}
