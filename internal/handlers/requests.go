package handlers

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GameCreateRequest represents a request to add a custom game
type GameCreateRequest struct {
	Name string `json:"name"`
}

// RoundCreateRequest represents a request to record a round
type RoundCreateRequest struct {
	GameID       string `json:"game_id"`
	TeamWinnerID string `json:"team_winner_id"`
	Participants string `json:"participants"`
}

// SettingsUpdateRequest represents a request to update event settings
type SettingsUpdateRequest struct {
	EventName string `json:"event_name"`
	BaseURL   string `json:"base_url"`
}
