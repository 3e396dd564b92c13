package services

import (
	"context"
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// TokenSvcFacade defines the operations for issuing and validating tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token for the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string against
	// the user's stored hash and returns the user when valid.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleAuthSvcFacade defines Google sign-in verification for the dashboard.
type GoogleAuthSvcFacade interface {
	// VerifyIDToken validates a Google ID token and returns the verified
	// email and display name.
	VerifyIDToken(ctx context.Context, idToken string) (email string, name string, err error)

	// ExchangeCode exchanges an OAuth authorization code from the dashboard's
	// redirect flow for the ID token embedded in Google's token response.
	ExchangeCode(ctx context.Context, code string) (idToken string, err error)
}
