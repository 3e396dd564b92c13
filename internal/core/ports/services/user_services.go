package services

import (
	"context"
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// UserSvcFacade defines the service operations for system users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// AuthenticateUser verifies email/password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// StoreRefreshTokenHash persists the hash of a freshly issued refresh token.
	StoreRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error

	// FindOrCreateGoogleUser resolves a verified Google identity to a local
	// user, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}
