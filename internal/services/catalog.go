package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"gincana/internal/logger"
	"gincana/internal/models"
	"gincana/internal/repository"
)

// The three competing teams. The catalog is closed: teams are never
// created, renamed, or deleted.
var Teams = []models.Team{
	{ID: "1", Name: "Vermelho", Color: "bg-red-500"},
	{ID: "2", Name: "Lilás", Color: "bg-purple-500"},
	{ID: "3", Name: "Azul", Color: "bg-blue-500"},
}

// BuiltinGames are always present and cannot be removed. Their IDs are
// stable small integers; custom games get timestamp IDs so the two ranges
// never collide.
var BuiltinGames = []models.Game{
	{ID: "1", Name: "Passa água"},
	{ID: "2", Name: "Repolho"},
	{ID: "3", Name: "Futebol de Banho"},
	{ID: "4", Name: "Pula corda"},
	{ID: "5", Name: "Passe ou repassa"},
	{ID: "6", Name: "Bambolê"},
	{ID: "7", Name: "Corrida do Balão"},
	{ID: "8", Name: "Adivinhe a música"},
	{ID: "9", Name: "Futebol de Mão"},
	{ID: "10", Name: "Corrida de saco"},
	{ID: "11", Name: "Corrida de colher e limão"},
	{ID: "12", Name: "Carrinho de mão"},
	{ID: "13", Name: "Mangueira com balão"},
	{ID: "14", Name: "Tiro ao alvo no balão"},
	{ID: "15", Name: "Grito da paz"},
	{ID: "16", Name: "Improviso em peça teatral"},
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a millisecond-timestamp identifier, bumped forward when
// two writes land in the same millisecond.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}

// CatalogServiceRepository defines the repository methods needed by CatalogService
type CatalogServiceRepository interface {
	repository.GameRepository
	repository.RoundRepository
}

// CatalogService serves the team roster and the game catalog, and manages
// user-added custom games.
type CatalogService struct {
	log  logger.Logger
	repo CatalogServiceRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(log logger.Logger, repo CatalogServiceRepository) *CatalogService {
	return &CatalogService{log: log, repo: repo}
}

// ListTeams returns the fixed team roster.
func (s *CatalogService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams := make([]models.Team, len(Teams))
	copy(teams, Teams)
	return teams, nil
}

// TeamByID looks a team up in the fixed roster. Returns nil when no team
// has that ID.
func (s *CatalogService) TeamByID(id string) *models.Team {
	for i := range Teams {
		if Teams[i].ID == id {
			return &Teams[i]
		}
	}
	return nil
}

// TeamByName looks a team up by display name. Returns nil when no team
// has that name.
func (s *CatalogService) TeamByName(name string) *models.Team {
	for i := range Teams {
		if Teams[i].Name == name {
			return &Teams[i]
		}
	}
	return nil
}

// ListGames returns the built-in catalog followed by custom games in
// creation order.
func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	custom, err := s.repo.ListCustomGames(ctx)
	if err != nil {
		return nil, err
	}
	games := make([]models.Game, 0, len(BuiltinGames)+len(custom))
	games = append(games, BuiltinGames...)
	games = append(games, custom...)
	return games, nil
}

// GameByID resolves an ID against the full catalog, built-ins first.
// Returns nil when no game has that ID.
func (s *CatalogService) GameByID(ctx context.Context, id string) (*models.Game, error) {
	for i := range BuiltinGames {
		if BuiltinGames[i].ID == id {
			g := BuiltinGames[i]
			return &g, nil
		}
	}
	custom, err := s.repo.ListCustomGames(ctx)
	if err != nil {
		return nil, err
	}
	for i := range custom {
		if custom[i].ID == id {
			g := custom[i]
			return &g, nil
		}
	}
	return nil, nil
}

// AddGame appends a custom game. The name is trimmed; a blank name is
// ignored and reported as nil without error.
func (s *CatalogService) AddGame(ctx context.Context, name string) (*models.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	game := models.Game{
		ID:       newID(),
		Name:     name,
		IsCustom: true,
	}
	if err := s.repo.CreateCustomGame(ctx, game); err != nil {
		return nil, err
	}

	s.log.Info("Custom game added", "id", game.ID, "name", game.Name)
	return &game, nil
}

// DeleteGame removes a custom game together with every round recorded for
// it. Built-in games are rejected.
func (s *CatalogService) DeleteGame(ctx context.Context, id string) error {
	for i := range BuiltinGames {
		if BuiltinGames[i].ID == id {
			return ErrBuiltinGame
		}
	}

	if err := s.repo.DeleteCustomGame(ctx, id); err != nil {
		return err
	}
	removed, err := s.repo.DeleteRoundsByGame(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info("Custom game deleted", "id", id, "rounds_removed", removed)
	return nil
}
