package db_models

import (
	"github.com/google/uuid"
)

const (
	RoleAdmin     = "ADMIN"
	RolePastor    = "PASTOR"
	RoleStaff     = "STAFF"
	RoleVolunteer = "VOLUNTEER"
	RoleMember    = "MEMBER"
)

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RolePastor, RoleStaff, RoleVolunteer, RoleMember:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Role         string     `gorm:"not null;default:MEMBER" json:"role"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	LastLogin    int64      `json:"last_login,omitempty"`
	MemberID     *uuid.UUID `gorm:"type:uuid" json:"member_id,omitempty"`
	Member       *Member    `gorm:"foreignKey:MemberID" json:"-"`
}
