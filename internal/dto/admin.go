package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims defines the custom claims for admin console JWTs.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents the admin login form
// @Description Request body for admin login
type LoginRequest struct {
	Password string `json:"password"`
}

// TokenResponse represents the response containing the admin access token.
// @Description Response body for admin authentication
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ManualRemedyRequest mirrors the admin "Add New / Edit" form. Symptoms and
// ingredients are comma separated, preparation steps semicolon separated.
// @Description Request body for adding a remedy by hand
type ManualRemedyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Symptoms    string `json:"symptoms"`
	Ingredients string `json:"ingredients"`
	Preparation string `json:"preparation"`
	Image       string `json:"image"`
	Tradition   string `json:"tradition,omitempty"`
	Science     string `json:"science,omitempty"`
	Time        string `json:"time,omitempty"`
}

// ContentUpdateResponse reports the snapshot produced by an admin write.
type ContentUpdateResponse struct {
	Key     string `json:"key"`
	Version uint64 `json:"version"`
	Count   int    `json:"count,omitempty"`
}
