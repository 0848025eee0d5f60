package db_models

import (
	"github.com/google/uuid"
)

type Member struct {
	BaseModel
	FirstName      string     `gorm:"not null" json:"first_name"`
	LastName       string     `gorm:"not null" json:"last_name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber    string     `json:"phone_number,omitempty"`
	Address        string     `json:"address,omitempty"`
	DateOfBirth    *string    `json:"date_of_birth,omitempty"`
	MembershipDate string     `gorm:"not null" json:"membership_date"`
	BaptismDate    *string    `json:"baptism_date,omitempty"`
	Active         bool       `gorm:"not null;default:true" json:"active"`
	FamilyID       *uuid.UUID `gorm:"type:uuid" json:"family_id,omitempty"`

	Donations     []Donation          `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Attendances   []Attendance        `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Registrations []EventRegistration `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Groups        []Group             `gorm:"many2many:group_members" json:"-"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
