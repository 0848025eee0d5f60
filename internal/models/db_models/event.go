package db_models

import (
	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	Name                 string `gorm:"not null" json:"name"`
	Description          string `json:"description,omitempty"`
	StartDate            int64  `gorm:"not null" json:"start_date"`
	EndDate              int64  `json:"end_date,omitempty"`
	Location             string `json:"location,omitempty"`
	MaxCapacity          int    `json:"max_capacity,omitempty"`
	RegistrationDeadline int64  `json:"registration_deadline,omitempty"`
	CostCents            int64  `json:"cost_cents,omitempty"`

	Registrations []EventRegistration `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Attendances   []Attendance        `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

type EventRegistration struct {
	BaseModel
	EventID  uuid.UUID `gorm:"type:uuid;not null;index:idx_event_member,unique" json:"event_id"`
	MemberID uuid.UUID `gorm:"type:uuid;not null;index:idx_event_member,unique" json:"member_id"`
	Status   string    `gorm:"not null;default:REGISTERED" json:"status"`
}
