package services

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// StaffSvcFacade defines the service operations for staff members and
// their compensation profiles. Both staff categories (system users and
// non-user staff members) resolve to one compensation lookup by StaffRef.
type StaffSvcFacade interface {
	CreateStaffMember(ctx context.Context, req dto.CreateStaffMemberRequest, creatorUserID string) (*domain.StaffMember, error)
	GetStaffMemberByID(ctx context.Context, staffMemberID string) (*domain.StaffMember, error)
	ListStaffMembers(ctx context.Context, limit, offset int) ([]domain.StaffMember, error)
	UpdateStaffMember(ctx context.Context, staffMemberID string, req dto.UpdateStaffMemberRequest, updaterUserID string) (*domain.StaffMember, error)
	DeleteStaffMember(ctx context.Context, staffMemberID string, deleterUserID string) error

	// ResolveStaff verifies the staff reference points at an existing user
	// or staff member.
	ResolveStaff(ctx context.Context, staff domain.StaffRef) error

	// GetCompensationProfile retrieves the current profile for a staff reference.
	GetCompensationProfile(ctx context.Context, staff domain.StaffRef) (*domain.CompensationProfile, error)

	// UpdateSalaryStructure supersedes the current profile with a new version.
	UpdateSalaryStructure(ctx context.Context, staff domain.StaffRef, req dto.UpdateSalaryStructureRequest, updaterUserID string) (*domain.CompensationProfile, error)

	// ListSalaryStructureHistory returns all profile versions, newest first.
	ListSalaryStructureHistory(ctx context.Context, staff domain.StaffRef) ([]domain.CompensationProfile, error)
}
