package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in bearer tokens accepted by the API
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
