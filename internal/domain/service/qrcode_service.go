package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateInvitationQR renders the invitation acceptance link for the
	// given token as a PNG QR code.
	GenerateInvitationQR(token string) ([]byte, error)
}
