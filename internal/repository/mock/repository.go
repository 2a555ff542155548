package mock

import (
	"context"

	"gincana/internal/models"
	"gincana/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without database
// manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.ListRoundsError = errors.New("database error")
//	svc := services.NewLedgerService(log, mockRepo, catalogSvc)
//	_, err := svc.ListRounds(ctx)
//	// err now contains the injected error
type Repository struct {
	repository.FullRepository

	// ===== Game Errors =====
	ListCustomGamesError  error
	CreateCustomGameError error
	DeleteCustomGameError error

	// ===== Round Errors =====
	ListRoundsError         error
	CreateRoundError        error
	DeleteRoundError        error
	DeleteRoundsByGameError error

	// ===== User Errors =====
	GetUserByUsernameError error
	UserExistsError        error
	CreateUserError        error

	// ===== Settings Errors =====
	GetSettingError error
	SetSettingError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{FullRepository: real}
}

// ===== Game Methods =====

func (m *Repository) ListCustomGames(ctx context.Context) ([]models.Game, error) {
	if m.ListCustomGamesError != nil {
		return nil, m.ListCustomGamesError
	}
	return m.FullRepository.ListCustomGames(ctx)
}

func (m *Repository) CreateCustomGame(ctx context.Context, game models.Game) error {
	if m.CreateCustomGameError != nil {
		return m.CreateCustomGameError
	}
	return m.FullRepository.CreateCustomGame(ctx, game)
}

func (m *Repository) DeleteCustomGame(ctx context.Context, id string) error {
	if m.DeleteCustomGameError != nil {
		return m.DeleteCustomGameError
	}
	return m.FullRepository.DeleteCustomGame(ctx, id)
}

// ===== Round Methods =====

func (m *Repository) ListRounds(ctx context.Context) ([]models.Round, error) {
	if m.ListRoundsError != nil {
		return nil, m.ListRoundsError
	}
	return m.FullRepository.ListRounds(ctx)
}

func (m *Repository) CreateRound(ctx context.Context, round models.Round) error {
	if m.CreateRoundError != nil {
		return m.CreateRoundError
	}
	return m.FullRepository.CreateRound(ctx, round)
}

func (m *Repository) DeleteRound(ctx context.Context, id string) error {
	if m.DeleteRoundError != nil {
		return m.DeleteRoundError
	}
	return m.FullRepository.DeleteRound(ctx, id)
}

func (m *Repository) DeleteRoundsByGame(ctx context.Context, gameID string) (int64, error) {
	if m.DeleteRoundsByGameError != nil {
		return 0, m.DeleteRoundsByGameError
	}
	return m.FullRepository.DeleteRoundsByGame(ctx, gameID)
}

// ===== User Methods =====

func (m *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}
	return m.FullRepository.GetUserByUsername(ctx, username)
}

func (m *Repository) UserExists(ctx context.Context, username, email string) (bool, error) {
	if m.UserExistsError != nil {
		return false, m.UserExistsError
	}
	return m.FullRepository.UserExists(ctx, username, email)
}

func (m *Repository) CreateUser(ctx context.Context, user models.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}
	return m.FullRepository.CreateUser(ctx, user)
}

// ===== Settings Methods =====

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}
