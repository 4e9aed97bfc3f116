package models

import (
	"time"
)

// Role is the static enumeration of staff roles. Capability checks below
// are the single source of truth for who may do what; handlers never
// match role names by pattern.
type Role string

const (
	RoleManager    Role = "Manager"
	RoleAccountant Role = "Accountant"
	RoleReception  Role = "Reception"
	RoleTenant     Role = "Tenant"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	FullName string `gorm:"size:255" json:"full_name"`

	Role        Role `gorm:"size:20" json:"role"`
	IsSuperuser bool `gorm:"column:is_superuser;default:false" json:"is_superuser"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds one of the given roles. A
// superuser passes every role gate.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// CanManageCheques gates cheque status updates and accounting reports.
func (u *User) CanManageCheques() bool {
	return u.HasRole(RoleAccountant, RoleManager)
}

// CanManageOffices gates office administration, proposals and PDF exports.
func (u *User) CanManageOffices() bool {
	return u.HasRole(RoleManager)
}

// CanViewReception gates the reception dashboard and usage reports.
func (u *User) CanViewReception() bool {
	return u.HasRole(RoleManager, RoleReception)
}
