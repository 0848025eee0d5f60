package db_models

import (
	"github.com/google/uuid"
)

type Attendance struct {
	BaseModel
	EventID        uuid.UUID `gorm:"type:uuid;not null" json:"event_id"`
	MemberID       uuid.UUID `gorm:"type:uuid;not null" json:"member_id"`
	AttendanceDate int64     `gorm:"not null" json:"attendance_date"`
	Present        bool      `gorm:"not null" json:"present"`
	Notes          string    `json:"notes,omitempty"`
}
