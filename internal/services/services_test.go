package services_test

import (
	"log/slog"
	"testing"

	"gincana/internal/logger"
	"gincana/internal/repository"
	"gincana/internal/services"
	"gincana/internal/testutil"
)

// setupServices wires the full service stack over a fresh in-memory database
func setupServices(t *testing.T) (*services.CatalogService, *services.LedgerService, *services.ScoreboardService, *services.UserService, *services.SettingsService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	log := logger.New(slog.LevelError)
	catalogSvc := services.NewCatalogService(log, repo)
	ledgerSvc := services.NewLedgerService(log, repo, catalogSvc)
	settingsSvc := services.NewSettingsService(log, repo)
	scoreboardSvc := services.NewScoreboardService(log, ledgerSvc, catalogSvc, settingsSvc)
	userSvc := services.NewUserService(log, repo)
	return catalogSvc, ledgerSvc, scoreboardSvc, userSvc, settingsSvc, repo
}
