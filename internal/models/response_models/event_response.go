package response_models

type EventResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description,omitempty"`
	StartDate            int64  `json:"start_date"`
	EndDate              int64  `json:"end_date,omitempty"`
	Location             string `json:"location,omitempty"`
	MaxCapacity          int    `json:"max_capacity,omitempty"`
	RegistrationDeadline int64  `json:"registration_deadline,omitempty"`
	Cost                 string `json:"cost,omitempty"`
	Registered           int    `json:"registered"`
}

type GroupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MeetingDay  string `json:"meeting_day,omitempty"`
	MeetingTime string `json:"meeting_time,omitempty"`
	Location    string `json:"location,omitempty"`
	LeaderName  string `json:"leader_name,omitempty"`
	MaxMembers  int    `json:"max_members,omitempty"`
	Active      bool   `json:"active"`
}

type AttendanceResponse struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	MemberID       string `json:"member_id"`
	AttendanceDate int64  `json:"attendance_date"`
	Present        bool   `json:"present"`
	Notes          string `json:"notes,omitempty"`
}

type VolunteerResponse struct {
	ID           string `json:"id"`
	MemberID     string `json:"member_id"`
	MinistryArea string `json:"ministry_area"`
	Skills       string `json:"skills,omitempty"`
	Availability string `json:"availability,omitempty"`
	Active       bool   `json:"active"`
}
