package models

// Team represents one of the three fixed competing teams.
// The catalog is closed: teams are never created, renamed, or deleted.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Game represents a game in the event catalog. The 16 built-ins live in
// code; custom games are persisted and individually deletable.
type Game struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCustom bool   `json:"isCustom"`
}

// Round is one recorded outcome of one game: which team won and who played.
// RoundNumber is a creation-order tag per game, not a dense index: deleting
// a round never renumbers the ones that remain.
type Round struct {
	ID           string `json:"id"`
	GameID       string `json:"game_id"`
	TeamWinnerID string `json:"team_winner_id"`
	Participants string `json:"participants"`
	RoundNumber  int    `json:"round_number"`
	CreatedAt    string `json:"created_at"`
	CreatedBy    string `json:"created_by"`

	// Derived on read by joining against the current catalogs.
	// Empty when the referenced team or game no longer exists.
	TeamName  string `json:"team_name,omitempty"`
	TeamColor string `json:"team_color,omitempty"`
	GameName  string `json:"game_name,omitempty"`
}

// User is a facilitator account. The active login flow stores and compares
// the password as-is.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
