package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(256, tt.errorCorrectionLevel).(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	svc, ok := NewQRCodeService(0, "M").(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, svc.size)
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateTrackingQR("https://jpeglogistics.cc/tracking.html?tn=JP123456789")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateTrackingQR_EmptyLink(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateTrackingQR("  ")
	assert.Error(t, err)
}
