package dto

import "time"

// DevTokenRequest asks for an access token on behalf of an owner.
// Only served in development.
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"omitempty,oneof=user admin"`
}

// TokenResponse contains an issued access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
