package services

import (
	"context"
	stderrors "errors"
	"strings"

	"gincana/internal/logger"
	"gincana/internal/repository"
)

// DefaultEventName is used until an organizer renames the event.
const DefaultEventName = "Gincana da Unidade"

// SettingsServiceRepository defines the repository methods needed by SettingsService
type SettingsServiceRepository interface {
	repository.SettingsRepository
}

// SettingsService handles event-level configuration.
type SettingsService struct {
	log  logger.Logger
	repo SettingsServiceRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo SettingsServiceRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// GetSetting retrieves a raw setting value. Missing keys come back empty
// without error.
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	value, err := s.repo.GetSetting(ctx, key)
	if stderrors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	return value, err
}

// SetSetting stores a raw setting value.
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	return s.repo.SetSetting(ctx, key, value)
}

// GetEventName returns the display name for the event, falling back to
// the default when unset.
func (s *SettingsService) GetEventName(ctx context.Context) (string, error) {
	name, err := s.GetSetting(ctx, "event_name")
	if err != nil {
		return "", err
	}
	if name == "" {
		return DefaultEventName, nil
	}
	return name, nil
}

// SetEventName renames the event. A blank name restores the default.
func (s *SettingsService) SetEventName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEventName
	}
	if err := s.repo.SetSetting(ctx, "event_name", name); err != nil {
		return err
	}
	s.log.Info("Event renamed", "name", name)
	return nil
}

// GetBaseURL returns the externally reachable address used for share
// links and QR codes.
func (s *SettingsService) GetBaseURL(ctx context.Context) (string, error) {
	return s.GetSetting(ctx, "base_url")
}

// SetBaseURL stores the externally reachable address.
func (s *SettingsService) SetBaseURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, "base_url", url)
}
