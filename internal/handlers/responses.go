package handlers

import "gincana/internal/models"

// UserResponse is the public shape of an account
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// SettingsResponse is the response for event settings
type SettingsResponse struct {
	EventName string `json:"event_name"`
	BaseURL   string `json:"base_url"`
}

// ShareResponse is the response for the share link
type ShareResponse struct {
	Link string `json:"link"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
