package qrcode

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	domainerrors "television/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateDeepLinkQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateDeepLinkQR("espn://live/espn-nba-001")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_RejectsUnknownLinks(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		link string
	}{
		{"empty", ""},
		{"http link", "https://evil.example.com/phish"},
		{"javascript", "javascript:alert(1)"},
		{"too long", "espn://live/" + strings.Repeat("a", maxDeepLinkLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GenerateDeepLinkQR(tt.link)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedDeepLink))
		})
	}
}
