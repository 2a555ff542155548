package services

import (
	"context"
	"strings"
	"time"

	"gincana/internal/logger"
	"gincana/internal/models"
	"gincana/internal/repository"
)

// LedgerServiceRepository defines the repository methods needed by LedgerService
type LedgerServiceRepository interface {
	repository.RoundRepository
}

// LedgerService maintains the append-only round ledger. Every score in the
// system is derived from it; nothing is stored per team.
type LedgerService struct {
	log     logger.Logger
	repo    LedgerServiceRepository
	catalog CatalogServicer
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(log logger.Logger, repo LedgerServiceRepository, catalog CatalogServicer) *LedgerService {
	return &LedgerService{log: log, repo: repo, catalog: catalog}
}

// ListRounds returns the ledger in insertion order, each entry enriched
// with the current team and game names. Entries whose team or game no
// longer resolves keep empty derived fields.
func (s *LedgerService) ListRounds(ctx context.Context) ([]models.Round, error) {
	rounds, err := s.repo.ListRounds(ctx)
	if err != nil {
		return nil, err
	}

	games, err := s.catalog.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	gameNames := make(map[string]string, len(games))
	for _, g := range games {
		gameNames[g.ID] = g.Name
	}

	for i := range rounds {
		if team := s.catalog.TeamByID(rounds[i].TeamWinnerID); team != nil {
			rounds[i].TeamName = team.Name
			rounds[i].TeamColor = team.Color
		}
		rounds[i].GameName = gameNames[rounds[i].GameID]
	}
	return rounds, nil
}

// AddRound records a game outcome. The round number is one more than the
// count of rounds already recorded for that game and is never reused:
// deleting a round leaves a gap rather than renumbering.
//
// An unknown game, an unknown team, or blank participants makes the call
// a no-op reported as nil without error.
func (s *LedgerService) AddRound(ctx context.Context, gameID, teamWinnerID, participants, createdBy string) (*models.Round, error) {
	participants = strings.TrimSpace(participants)
	if participants == "" {
		return nil, nil
	}
	if s.catalog.TeamByID(teamWinnerID) == nil {
		return nil, nil
	}
	game, err := s.catalog.GameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}

	existing, err := s.repo.ListRounds(ctx)
	if err != nil {
		return nil, err
	}
	number := 1
	for _, r := range existing {
		if r.GameID == gameID {
			number++
		}
	}

	round := models.Round{
		ID:           newID(),
		GameID:       gameID,
		TeamWinnerID: teamWinnerID,
		Participants: participants,
		RoundNumber:  number,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		CreatedBy:    createdBy,
	}
	if err := s.repo.CreateRound(ctx, round); err != nil {
		return nil, err
	}

	s.log.Info("Round recorded", "game", game.Name, "round", number, "winner", teamWinnerID)

	round.GameName = game.Name
	if team := s.catalog.TeamByID(teamWinnerID); team != nil {
		round.TeamName = team.Name
		round.TeamColor = team.Color
	}
	return &round, nil
}

// DeleteRound removes a single ledger entry. Remaining rounds keep their
// numbers.
func (s *LedgerService) DeleteRound(ctx context.Context, id string) error {
	if err := s.repo.DeleteRound(ctx, id); err != nil {
		return err
	}
	s.log.Info("Round deleted", "id", id)
	return nil
}
