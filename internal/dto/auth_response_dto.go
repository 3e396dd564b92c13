package dto

import "time"

// LoginRequest defines the credentials payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries the ID token obtained by the dashboard from
// Google's sign-in flow.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleExchangeCodeRequest carries the OAuth authorization code from the
// dashboard's redirect flow.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// RefreshRequest defines the payload for exchanging a refresh token.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	AccessToken          string       `json:"accessToken"`
	AccessTokenExpiresAt time.Time    `json:"accessTokenExpiresAt"`
	RefreshToken         string       `json:"refreshToken,omitempty"`
	User                 UserResponse `json:"user"`
}
