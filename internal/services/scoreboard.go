package services

import (
	"context"

	"gincana/internal/logger"
	"gincana/internal/models"
)

// PointsPerWin is awarded for every round a team wins. There are no
// partial scores.
const PointsPerWin = 10

// TeamScore is one scoreboard row.
type TeamScore struct {
	Team  models.Team `json:"team"`
	Wins  int         `json:"wins"`
	Score int         `json:"score"`
}

// Scoreboard is the full derived standing plus the ledger it came from.
type Scoreboard struct {
	EventName string         `json:"event_name"`
	Scores    []TeamScore    `json:"scores"`
	Rounds    []models.Round `json:"rounds"`
}

// ScoreboardService derives standings from the round ledger. Scores are
// recomputed on every read; deleting a round immediately lowers them.
type ScoreboardService struct {
	log      logger.Logger
	ledger   LedgerServicer
	catalog  CatalogServicer
	settings SettingsServicer
}

// NewScoreboardService creates a new ScoreboardService
func NewScoreboardService(log logger.Logger, ledger LedgerServicer, catalog CatalogServicer, settings SettingsServicer) *ScoreboardService {
	return &ScoreboardService{log: log, ledger: ledger, catalog: catalog, settings: settings}
}

// ScoreOf returns the current score for the named team. Unknown names
// score zero.
func (s *ScoreboardService) ScoreOf(ctx context.Context, teamName string) (int, error) {
	rounds, err := s.ledger.ListRounds(ctx)
	if err != nil {
		return 0, err
	}
	wins := 0
	for _, r := range rounds {
		if r.TeamName == teamName {
			wins++
		}
	}
	return wins * PointsPerWin, nil
}

// GetScoreboard returns every team's standing in roster order together
// with the enriched ledger.
func (s *ScoreboardService) GetScoreboard(ctx context.Context) (*Scoreboard, error) {
	rounds, err := s.ledger.ListRounds(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.catalog.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	winsByName := make(map[string]int, len(teams))
	for _, r := range rounds {
		if r.TeamName != "" {
			winsByName[r.TeamName]++
		}
	}

	scores := make([]TeamScore, 0, len(teams))
	for _, team := range teams {
		wins := winsByName[team.Name]
		scores = append(scores, TeamScore{Team: team, Wins: wins, Score: wins * PointsPerWin})
	}

	eventName, err := s.settings.GetEventName(ctx)
	if err != nil {
		return nil, err
	}

	return &Scoreboard{
		EventName: eventName,
		Scores:    scores,
		Rounds:    rounds,
	}, nil
}

// RoundsForGame returns the ledger entries for one game, in insertion
// order.
func (s *ScoreboardService) RoundsForGame(ctx context.Context, gameID string) ([]models.Round, error) {
	rounds, err := s.ledger.ListRounds(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []models.Round
	for _, r := range rounds {
		if r.GameID == gameID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
