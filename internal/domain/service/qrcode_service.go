package service

// QRCodeService renders provider deep links as QR codes
type QRCodeService interface {
	// GenerateDeepLinkQR returns a PNG encoding link. Unknown deep link schemes are rejected.
	GenerateDeepLinkQR(link string) ([]byte, error)
}
