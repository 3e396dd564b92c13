package domain

import "time"

// User represents a system user of the dashboard in the domain.
// Users are also payable staff (StaffKindUser).
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash; empty for Google-only accounts
	IsAdmin      bool   `json:"isAdmin"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Ref returns the StaffRef for this user.
func (u *User) Ref() StaffRef {
	return StaffRef{Kind: StaffKindUser, ID: u.UserID}
}
