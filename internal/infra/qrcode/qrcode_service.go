package qrcode

import (
	"fmt"
	"net/url"
	"slices"

	"television/config"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/service"
	"television/internal/infra/content"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const maxDeepLinkLength = 1024

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	schemes              []string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		schemes:              content.DeepLinkSchemes(),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateDeepLinkQR encodes a provider deep link as a PNG
func (s *qrcodeService) GenerateDeepLinkQR(link string) ([]byte, error) {
	if len(link) == 0 || len(link) > maxDeepLinkLength {
		return nil, domainerrors.ErrUnsupportedDeepLink.WithDetails("deep link is empty or too long")
	}

	parsed, err := url.Parse(link)
	if err != nil || !slices.Contains(s.schemes, parsed.Scheme) {
		return nil, domainerrors.ErrUnsupportedDeepLink.WithDetails(fmt.Sprintf("unsupported deep link scheme %q", schemeOf(parsed)))
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeGenerationFailed.WithDetails(err.Error()), "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeGenerationFailed.WithDetails(err.Error()), "failed to generate PNG")
	}

	return pngBytes, nil
}

func schemeOf(u *url.URL) string {
	if u == nil {
		return ""
	}

	return u.Scheme
}

// Module provides the QR code service
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewQRCodeServiceFromConfig),
)
