package handler

import (
	"net/http"

	"television/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// QRCodeHandler renders provider deep links as PNG QR codes
type QRCodeHandler struct {
	qrCodeService service.QRCodeService
}

// NewQRCodeHandler is the constructor for QRCodeHandler
func NewQRCodeHandler(qrCodeService service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{qrCodeService: qrCodeService}
}

// DeepLinkQR handles GET /sports/qr?link=
func (h *QRCodeHandler) DeepLinkQR(c echo.Context) error {
	png, err := h.qrCodeService.GenerateDeepLinkQR(c.QueryParam("link"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
