package service

// QRCodeService generates and parses order pickup QR codes shown on the
// order confirmation screen.
type QRCodeService interface {
	// GenerateOrderQR generates a QR code PNG for an order reference.
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the order ID.
	ParseOrderQR(qrData string) (string, error)
}
