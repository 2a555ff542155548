package services

import (
	"context"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"gincana/internal/errors"
	"gincana/internal/logger"
)

// ShareService produces the join link and its QR image so phones on the
// same network can open the scoreboard.
type ShareService struct {
	log      logger.Logger
	settings SettingsServicer
}

// NewShareService creates a new ShareService
func NewShareService(log logger.Logger, settings SettingsServicer) *ShareService {
	return &ShareService{log: log, settings: settings}
}

// ShareLink returns the base URL viewers should open.
func (s *ShareService) ShareLink(ctx context.Context) (string, error) {
	baseURL, err := s.settings.GetBaseURL(ctx)
	if err != nil {
		return "", err
	}
	if baseURL == "" {
		return "", errors.Validation("base_url not configured")
	}
	return strings.TrimSuffix(baseURL, "/"), nil
}

// ShareQR renders the join link as a PNG QR code.
func (s *ShareService) ShareQR(ctx context.Context) ([]byte, error) {
	link, err := s.ShareLink(ctx)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(link, qrcode.Medium, 256)
}
