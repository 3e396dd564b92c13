package models

import "time"

// StaffMember is the database row for a non-user staff member.
type StaffMember struct {
	StaffMemberID string `db:"staff_member_id"`
	Name          string `db:"name"`
	Phone         string `db:"phone"`
	Position      string `db:"position"`
	IsActive      bool   `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
