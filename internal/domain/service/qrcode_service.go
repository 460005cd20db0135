package service

// QRCodeService renders the public tracking link as a scannable label.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG encoding link.
	GenerateTrackingQR(link string) ([]byte, error)
}
