package db_models

type Group struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	MeetingDay  string `json:"meeting_day,omitempty"`
	MeetingTime string `json:"meeting_time,omitempty"`
	Location    string `json:"location,omitempty"`
	LeaderName  string `json:"leader_name,omitempty"`
	MaxMembers  int    `json:"max_members,omitempty"`
	Active      bool   `gorm:"not null;default:true" json:"active"`

	Members []Member `gorm:"many2many:group_members" json:"-"`
}
