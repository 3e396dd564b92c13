package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// staffService manages staff members and their compensation profiles.
// Compensation lookups are uniform across both staff categories via
// domain.StaffRef.
type staffService struct {
	staffRepo portsrepo.StaffRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
}

// NewStaffService creates a new staff service.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo, userRepo: userRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaffMember(ctx context.Context, req dto.CreateStaffMemberRequest, creatorUserID string) (*domain.StaffMember, error) {
	now := time.Now()
	member := domain.StaffMember{
		StaffMemberID: uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Position:      req.Position,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.staffRepo.SaveStaffMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &member, nil
}

func (s *staffService) GetStaffMemberByID(ctx context.Context, staffMemberID string) (*domain.StaffMember, error) {
	member, err := s.staffRepo.FindStaffMemberByID(ctx, staffMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member %s: %w", staffMemberID, err)
	}
	return member, nil
}

func (s *staffService) ListStaffMembers(ctx context.Context, limit, offset int) ([]domain.StaffMember, error) {
	if limit <= 0 {
		limit = 20
	}
	members, err := s.staffRepo.ListStaffMembers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}
	return members, nil
}

func (s *staffService) UpdateStaffMember(ctx context.Context, staffMemberID string, req dto.UpdateStaffMemberRequest, updaterUserID string) (*domain.StaffMember, error) {
	member, err := s.staffRepo.FindStaffMemberByID(ctx, staffMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find staff member %s for update: %w", staffMemberID, err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = updaterUserID

	if err := s.staffRepo.UpdateStaffMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update staff member %s: %w", staffMemberID, err)
	}
	return member, nil
}

func (s *staffService) DeleteStaffMember(ctx context.Context, staffMemberID string, deleterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.staffRepo.MarkStaffMemberDeleted(ctx, staffMemberID, deleterUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", staffMemberID, err)
	}
	logger.Info("Staff member deleted", slog.String("staff_member_id", staffMemberID), slog.String("deleted_by", deleterUserID))
	return nil
}

// ResolveStaff verifies the reference points at an existing user or staff
// member. Returns apperrors.ErrValidation for an unknown kind and
// apperrors.ErrNotFound for a dangling ID.
func (s *staffService) ResolveStaff(ctx context.Context, staff domain.StaffRef) error {
	switch staff.Kind {
	case domain.StaffKindUser:
		if _, err := s.userRepo.FindUserByID(ctx, staff.ID); err != nil {
			return fmt.Errorf("failed to resolve staff user %s: %w", staff.ID, err)
		}
	case domain.StaffKindStaffMember:
		if _, err := s.staffRepo.FindStaffMemberByID(ctx, staff.ID); err != nil {
			return fmt.Errorf("failed to resolve staff member %s: %w", staff.ID, err)
		}
	default:
		return fmt.Errorf("%w: unknown staff kind %q", apperrors.ErrValidation, staff.Kind)
	}
	return nil
}

func (s *staffService) GetCompensationProfile(ctx context.Context, staff domain.StaffRef) (*domain.CompensationProfile, error) {
	if err := s.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	profile, err := s.staffRepo.FindCurrentProfile(ctx, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to get compensation profile for %s: %w", staff.Key(), err)
	}
	return profile, nil
}

// UpdateSalaryStructure supersedes the current profile with a new version.
// The previous row is retained so past settlements stay explainable.
func (s *staffService) UpdateSalaryStructure(ctx context.Context, staff domain.StaffRef, req dto.UpdateSalaryStructureRequest, updaterUserID string) (*domain.CompensationProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	if err := validateSalaryStructure(req); err != nil {
		return nil, err
	}

	version := 1
	current, err := s.staffRepo.FindCurrentProfile(ctx, staff)
	if err == nil {
		version = current.Version + 1
	}

	now := time.Now()
	profile := domain.CompensationProfile{
		ProfileID:       uuid.NewString(),
		Staff:           staff,
		BaseSalary:      req.BaseSalary,
		Allowances:      req.Allowances,
		OtherDeductions: req.OtherDeductions,
		TaxRate:         req.TaxRate,
		PensionRate:     req.PensionRate,
		SalaryType:      req.SalaryType,
		BankName:        req.BankName,
		BankAccount:     req.BankAccount,
		Version:         version,
		IsCurrent:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.staffRepo.SupersedeProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to supersede compensation profile for %s: %w", staff.Key(), err)
	}
	logger.Info("Salary structure updated",
		slog.String("staff", staff.Key()),
		slog.Int("version", version),
		slog.String("updated_by", updaterUserID))
	return &profile, nil
}

func (s *staffService) ListSalaryStructureHistory(ctx context.Context, staff domain.StaffRef) ([]domain.CompensationProfile, error) {
	if err := s.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	profiles, err := s.staffRepo.ListProfileVersions(ctx, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile versions for %s: %w", staff.Key(), err)
	}
	return profiles, nil
}

func validateSalaryStructure(req dto.UpdateSalaryStructureRequest) error {
	hundred := decimal.NewFromInt(100)
	if req.BaseSalary.IsNegative() {
		return fmt.Errorf("%w: base salary must not be negative", apperrors.ErrValidation)
	}
	if req.Allowances.IsNegative() || req.OtherDeductions.IsNegative() {
		return fmt.Errorf("%w: allowances and deductions must not be negative", apperrors.ErrValidation)
	}
	if req.TaxRate.IsNegative() || req.TaxRate.GreaterThan(hundred) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	if req.PensionRate.IsNegative() || req.PensionRate.GreaterThan(hundred) {
		return fmt.Errorf("%w: pension rate must be between 0 and 100", apperrors.ErrValidation)
	}
	if !domain.ValidSalaryType(req.SalaryType) {
		return fmt.Errorf("%w: unknown salary type %q", apperrors.ErrValidation, req.SalaryType)
	}
	return nil
}
