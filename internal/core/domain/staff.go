package domain

import (
	"fmt"
	"time"
)

// StaffKind distinguishes the two parallel staff categories: system users
// (people who can log in to the dashboard) and plain staff members (bakers,
// riders, shop staff without accounts). Both are payable through the same
// compensation pipeline.
type StaffKind string

const (
	StaffKindUser        StaffKind = "user"
	StaffKindStaffMember StaffKind = "staff_member"
)

// ValidStaffKind reports whether k is a recognised staff category.
func ValidStaffKind(k StaffKind) bool {
	return k == StaffKindUser || k == StaffKindStaffMember
}

// StaffRef identifies a payable person uniformly across both staff
// categories. It is the composite key every payroll entity hangs off.
type StaffRef struct {
	Kind StaffKind `json:"kind"`
	ID   string    `json:"id"` // UserID or StaffMemberID depending on Kind
}

// Key returns a stable string form of the composite key, used for map keys
// and per-staff lock selection.
func (r StaffRef) Key() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// StaffMember represents a non-user staff member (no login credentials).
type StaffMember struct {
	StaffMemberID string `json:"staffMemberID"` // Primary Key (e.g., UUID)
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Position      string `json:"position"` // e.g., baker, cashier, cleaner
	IsActive      bool   `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
