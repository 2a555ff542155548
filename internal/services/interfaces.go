package services

import (
	"context"

	"gincana/internal/models"
)

// CatalogServicer defines the interface for team and game catalog operations
type CatalogServicer interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	TeamByID(id string) *models.Team
	TeamByName(name string) *models.Team
	ListGames(ctx context.Context) ([]models.Game, error)
	GameByID(ctx context.Context, id string) (*models.Game, error)
	AddGame(ctx context.Context, name string) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// LedgerServicer defines the interface for round-ledger operations
type LedgerServicer interface {
	ListRounds(ctx context.Context) ([]models.Round, error)
	AddRound(ctx context.Context, gameID, teamWinnerID, participants, createdBy string) (*models.Round, error)
	DeleteRound(ctx context.Context, id string) error
}

// ScoreboardServicer defines the interface for derived-standing operations
type ScoreboardServicer interface {
	ScoreOf(ctx context.Context, teamName string) (int, error)
	GetScoreboard(ctx context.Context) (*Scoreboard, error)
	RoundsForGame(ctx context.Context, gameID string) ([]models.Round, error)
}

// UserServicer defines the interface for account operations
type UserServicer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// ShareServicer defines the interface for share-link operations
type ShareServicer interface {
	ShareLink(ctx context.Context) (string, error)
	ShareQR(ctx context.Context) ([]byte, error)
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetEventName(ctx context.Context) (string, error)
	SetEventName(ctx context.Context, name string) error
	GetBaseURL(ctx context.Context) (string, error)
	SetBaseURL(ctx context.Context, url string) error
}

// Ensure concrete types implement interfaces
var (
	_ CatalogServicer    = (*CatalogService)(nil)
	_ LedgerServicer     = (*LedgerService)(nil)
	_ ScoreboardServicer = (*ScoreboardService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ ShareServicer      = (*ShareService)(nil)
	_ SettingsServicer   = (*SettingsService)(nil)
)
