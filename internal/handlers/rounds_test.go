package handlers_test

import (
	"net/http"
	"testing"

	"gincana/internal/models"
	"gincana/internal/services"
)

func TestHandleCreateRound_Scenario(t *testing.T) {
	setup := newTestSetup(t)

	// Game "2" is Repolho, team "2" is Lilás
	rec := doJSON(t, setup.router, http.MethodPost, "/api/rounds",
		map[string]string{"game_id": "2", "team_winner_id": "2", "participants": "Ana, Beto"},
		setup.authCookie)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var round models.Round
	decodeBody(t, rec, &round)
	if round.RoundNumber != 1 {
		t.Errorf("expected round number 1, got %d", round.RoundNumber)
	}
	if round.GameName != "Repolho" {
		t.Errorf("expected game name Repolho, got %q", round.GameName)
	}
	if round.TeamName != "Lilás" {
		t.Errorf("expected team name Lilás, got %q", round.TeamName)
	}
	if round.CreatedBy != "test-user" {
		t.Errorf("expected round attributed to the session user, got %q", round.CreatedBy)
	}

	// The win is worth exactly ten points
	recBoard := doJSON(t, setup.router, http.MethodGet, "/api/scoreboard", nil, nil)
	var board services.Scoreboard
	decodeBody(t, recBoard, &board)
	for _, row := range board.Scores {
		want := 0
		if row.Team.Name == "Lilás" {
			want = 10
		}
		if row.Score != want {
			t.Errorf("team %s: expected score %d, got %d", row.Team.Name, want, row.Score)
		}
	}
}

func TestHandleCreateRound_InvalidInputs(t *testing.T) {
	setup := newTestSetup(t)

	cases := []map[string]string{
		{"game_id": "999", "team_winner_id": "1", "participants": "Ana"},
		{"game_id": "1", "team_winner_id": "9", "participants": "Ana"},
		{"game_id": "1", "team_winner_id": "1", "participants": "   "},
	}
	for i, body := range cases {
		rec := doJSON(t, setup.router, http.MethodPost, "/api/rounds", body, setup.authCookie)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}

	rec := doJSON(t, setup.router, http.MethodGet, "/api/rounds", nil, nil)
	var rounds []models.Round
	decodeBody(t, rec, &rounds)
	if len(rounds) != 0 {
		t.Errorf("expected ledger untouched, got %d rounds", len(rounds))
	}
}

func TestHandleDeleteRound_LowersScore(t *testing.T) {
	setup := newTestSetup(t)

	rec := doJSON(t, setup.router, http.MethodPost, "/api/rounds",
		map[string]string{"game_id": "1", "team_winner_id": "3", "participants": "Ana"},
		setup.authCookie)
	var round models.Round
	decodeBody(t, rec, &round)

	rec = doJSON(t, setup.router, http.MethodDelete, "/api/rounds/"+round.ID, nil, setup.authCookie)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	recBoard := doJSON(t, setup.router, http.MethodGet, "/api/scoreboard", nil, nil)
	var board services.Scoreboard
	decodeBody(t, recBoard, &board)
	for _, row := range board.Scores {
		if row.Score != 0 {
			t.Errorf("team %s: expected 0 after deletion, got %d", row.Team.Name, row.Score)
		}
	}
}

func TestHandleGetRounds_EnrichedLedger(t *testing.T) {
	setup := newTestSetup(t)

	doJSON(t, setup.router, http.MethodPost, "/api/rounds",
		map[string]string{"game_id": "4", "team_winner_id": "1", "participants": "Ana"}, setup.authCookie)

	rec := doJSON(t, setup.router, http.MethodGet, "/api/rounds", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rounds []models.Round
	decodeBody(t, rec, &rounds)
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
	if rounds[0].GameName != "Pula corda" || rounds[0].TeamName != "Vermelho" {
		t.Errorf("expected enriched names, got %+v", rounds[0])
	}
}
