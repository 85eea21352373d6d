package services

import (
	"testing"

	"organizer/internal/apperr"
	"organizer/internal/config"
	"organizer/internal/models"

	"github.com/stretchr/testify/assert"
)

func qrTestConfig() *config.Configuration {
	return &config.Configuration{
		QR: config.QRConfig{
			Scheme:    "myorganizer",
			WebOrigin: "https://organizer.example.com",
		},
	}
}

func TestQRService_EncodePayload(t *testing.T) {
	service := NewQRService(qrTestConfig())

	box := &models.Box{Code: "LR03"}

	assert.Equal(t, "myorganizer://box/LR03", service.EncodePayload(box))
}

func TestQRService_DecodePayload_AppScheme(t *testing.T) {
	service := NewQRService(qrTestConfig())

	key, err := service.DecodePayload("myorganizer://box/LR03")

	assert.NoError(t, err)
	assert.Equal(t, KeyByCode, key.Kind)
	assert.Equal(t, "LR03", key.Value)
}

func TestQRService_DecodePayload_WebURL(t *testing.T) {
	service := NewQRService(qrTestConfig())

	key, err := service.DecodePayload("https://organizer.example.com/box/abc-123")

	assert.NoError(t, err)
	assert.Equal(t, KeyByID, key.Kind)
	assert.Equal(t, "abc-123", key.Value)
}

func TestQRService_DecodePayload_Unrecognized(t *testing.T) {
	service := NewQRService(qrTestConfig())

	tests := []string{
		"not-a-qr-we-recognize",
		"myorganizer://box/",
		"https://organizer.example.com/rooms/kitchen",
		"",
	}
	for _, payload := range tests {
		key, err := service.DecodePayload(payload)
		assert.Nil(t, key, "payload %q", payload)
		assert.ErrorIs(t, err, apperr.ErrInvalidFormat, "payload %q", payload)
	}
}

func TestQRService_EncodeDecodeRoundTrip(t *testing.T) {
	service := NewQRService(qrTestConfig())

	box := &models.Box{Code: "KI07"}
	key, err := service.DecodePayload(service.EncodePayload(box))

	assert.NoError(t, err)
	assert.Equal(t, KeyByCode, key.Kind)
	assert.Equal(t, "KI07", key.Value)
}

func TestQRService_RenderPNG(t *testing.T) {
	service := NewQRService(qrTestConfig())

	png, err := service.RenderPNG(&models.Box{Code: "LR01"}, 0)

	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
