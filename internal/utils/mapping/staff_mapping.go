package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelStaffMember converts a domain StaffMember to a model StaffMember
func ToModelStaffMember(d domain.StaffMember) models.StaffMember {
	return models.StaffMember{
		StaffMemberID: d.StaffMemberID,
		Name:          d.Name,
		Phone:         d.Phone,
		Position:      d.Position,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainStaffMember converts a model StaffMember to a domain StaffMember
func ToDomainStaffMember(m models.StaffMember) domain.StaffMember {
	return domain.StaffMember{
		StaffMemberID: m.StaffMemberID,
		Name:          m.Name,
		Phone:         m.Phone,
		Position:      m.Position,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToDomainStaffMemberSlice converts a slice of model StaffMembers to domain
func ToDomainStaffMemberSlice(ms []models.StaffMember) []domain.StaffMember {
	ds := make([]domain.StaffMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaffMember(m)
	}
	return ds
}
