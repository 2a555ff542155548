package repository

import (
	"context"

	"gincana/internal/models"
)

// GameRepository defines custom-game data operations. Built-in games are not
// persisted; only user-added games live here.
type GameRepository interface {
	ListCustomGames(ctx context.Context) ([]models.Game, error)
	CreateCustomGame(ctx context.Context, game models.Game) error
	DeleteCustomGame(ctx context.Context, id string) error
}

// RoundRepository defines round-ledger data operations. Rounds come back in
// insertion order, unenriched; the service layer joins them against the
// catalogs.
type RoundRepository interface {
	ListRounds(ctx context.Context) ([]models.Round, error)
	CreateRound(ctx context.Context, round models.Round) error
	DeleteRound(ctx context.Context, id string) error
	DeleteRoundsByGame(ctx context.Context, gameID string) (int64, error)
}

// UserRepository defines user-account data operations
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, user models.User) error
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	GameRepository
	RoundRepository
	UserRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
