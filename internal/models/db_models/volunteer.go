package db_models

import (
	"github.com/google/uuid"
)

type Volunteer struct {
	BaseModel
	MemberID     uuid.UUID `gorm:"type:uuid;not null" json:"member_id"`
	MinistryArea string    `gorm:"not null" json:"ministry_area"`
	Skills       string    `json:"skills,omitempty"`
	Availability string    `json:"availability,omitempty"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
}
