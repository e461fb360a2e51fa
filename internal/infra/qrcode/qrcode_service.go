package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"horeca/config"
	"horeca/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	acceptBaseURL        string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that renders invitation
// acceptance links. Tokens are appended to the configured base URL.
func NewQRCodeService(cfg *config.InvitationConfig) (service.QRCodeService, error) {
	if cfg == nil || cfg.AcceptBaseURL == "" {
		return nil, errors.New("invitation accept base URL must be configured")
	}
	if _, err := url.Parse(cfg.AcceptBaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid invitation accept base URL")
	}

	size := cfg.QRSize
	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		acceptBaseURL:        strings.TrimRight(cfg.AcceptBaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: qrcode.Medium,
	}, nil
}

// GenerateInvitationQR renders the invitation acceptance link for the given
// token as a PNG QR code.
func (s *qrcodeService) GenerateInvitationQR(token string) ([]byte, error) {
	if token == "" {
		return nil, errors.New("invitation token must not be empty")
	}

	link := fmt.Sprintf("%s/%s", s.acceptBaseURL, url.PathEscape(token))

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
