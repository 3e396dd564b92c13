package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffMemberRequest defines the payload for registering a non-user
// staff member.
type CreateStaffMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Position string `json:"position" binding:"required"`
}

// UpdateStaffMemberRequest defines the payload for updating a staff member.
// Nil fields are left unchanged.
type UpdateStaffMemberRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Position *string `json:"position,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// StaffMemberResponse defines the staff member data returned to clients.
type StaffMemberResponse struct {
	StaffMemberID string    `json:"staffMemberID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Position      string    `json:"position"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToStaffMemberResponse converts a domain.StaffMember to its response DTO.
func ToStaffMemberResponse(m *domain.StaffMember) StaffMemberResponse {
	return StaffMemberResponse{
		StaffMemberID: m.StaffMemberID,
		Name:          m.Name,
		Phone:         m.Phone,
		Position:      m.Position,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
	}
}

// ToStaffMemberResponses converts a slice of domain.StaffMember to DTOs.
func ToStaffMemberResponses(members []domain.StaffMember) []StaffMemberResponse {
	responses := make([]StaffMemberResponse, len(members))
	for i := range members {
		responses[i] = ToStaffMemberResponse(&members[i])
	}
	return responses
}

// UpdateSalaryStructureRequest defines the payload for the explicit
// "update salary structure" action. It supersedes the current profile.
type UpdateSalaryStructureRequest struct {
	BaseSalary      decimal.Decimal   `json:"baseSalary" binding:"required"`
	Allowances      decimal.Decimal   `json:"allowances"`
	OtherDeductions decimal.Decimal   `json:"otherDeductions"`
	TaxRate         decimal.Decimal   `json:"taxRate"`
	PensionRate     decimal.Decimal   `json:"pensionRate"`
	SalaryType      domain.SalaryType `json:"salaryType" binding:"required"`
	BankName        string            `json:"bankName"`
	BankAccount     string            `json:"bankAccount"`
}

// CompensationProfileResponse defines the profile data returned to clients.
type CompensationProfileResponse struct {
	ProfileID       string            `json:"profileID"`
	Staff           domain.StaffRef   `json:"staff"`
	BaseSalary      decimal.Decimal   `json:"baseSalary"`
	Allowances      decimal.Decimal   `json:"allowances"`
	OtherDeductions decimal.Decimal   `json:"otherDeductions"`
	TaxRate         decimal.Decimal   `json:"taxRate"`
	PensionRate     decimal.Decimal   `json:"pensionRate"`
	SalaryType      domain.SalaryType `json:"salaryType"`
	BankName        string            `json:"bankName"`
	BankAccount     string            `json:"bankAccount"`
	Version         int               `json:"version"`
	IsCurrent       bool              `json:"isCurrent"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ToCompensationProfileResponse converts a domain profile to its DTO.
func ToCompensationProfileResponse(p *domain.CompensationProfile) CompensationProfileResponse {
	return CompensationProfileResponse{
		ProfileID:       p.ProfileID,
		Staff:           p.Staff,
		BaseSalary:      p.BaseSalary,
		Allowances:      p.Allowances,
		OtherDeductions: p.OtherDeductions,
		TaxRate:         p.TaxRate,
		PensionRate:     p.PensionRate,
		SalaryType:      p.SalaryType,
		BankName:        p.BankName,
		BankAccount:     p.BankAccount,
		Version:         p.Version,
		IsCurrent:       p.IsCurrent,
		CreatedAt:       p.CreatedAt,
	}
}

// ToCompensationProfileResponses converts a slice of profiles to DTOs.
func ToCompensationProfileResponses(profiles []domain.CompensationProfile) []CompensationProfileResponse {
	responses := make([]CompensationProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = ToCompensationProfileResponse(&profiles[i])
	}
	return responses
}
