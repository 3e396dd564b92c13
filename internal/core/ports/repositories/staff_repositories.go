package repositories

import (
	"context"
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// StaffMemberReader defines read operations for non-user staff members
type StaffMemberReader interface {
	// FindStaffMemberByID retrieves a staff member by their unique identifier.
	FindStaffMemberByID(ctx context.Context, staffMemberID string) (*domain.StaffMember, error)

	// ListStaffMembers retrieves a page of staff members.
	ListStaffMembers(ctx context.Context, limit int, offset int) ([]domain.StaffMember, error)
}

// StaffMemberWriter defines write operations for non-user staff members
type StaffMemberWriter interface {
	// SaveStaffMember persists a new staff member.
	SaveStaffMember(ctx context.Context, member domain.StaffMember) error

	// UpdateStaffMember persists changes to an existing staff member.
	UpdateStaffMember(ctx context.Context, member domain.StaffMember) error

	// MarkStaffMemberDeleted soft deletes a staff member.
	MarkStaffMemberDeleted(ctx context.Context, staffMemberID string, deletedBy string, deletedAt time.Time) error
}

// CompensationReader defines read operations for compensation profiles
type CompensationReader interface {
	// FindCurrentProfile retrieves the current compensation profile for a
	// staff reference, regardless of staff kind.
	FindCurrentProfile(ctx context.Context, staff domain.StaffRef) (*domain.CompensationProfile, error)

	// ListProfileVersions retrieves all versions of a staff member's
	// compensation profile, newest first.
	ListProfileVersions(ctx context.Context, staff domain.StaffRef) ([]domain.CompensationProfile, error)
}

// CompensationWriter defines write operations for compensation profiles
type CompensationWriter interface {
	// SupersedeProfile marks the staff member's current profile as no longer
	// current and inserts the replacement, atomically. The prior row is
	// retained; profiles are never deleted.
	SupersedeProfile(ctx context.Context, profile domain.CompensationProfile) error
}

// StaffRepositoryFacade combines staff member and compensation repository interfaces
type StaffRepositoryFacade interface {
	StaffMemberReader
	StaffMemberWriter
	CompensationReader
	CompensationWriter
}
