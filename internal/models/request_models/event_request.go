package request_models

type EventRequest struct {
	Name                 string `json:"name" binding:"required"`
	Description          string `json:"description"`
	StartDate            int64  `json:"start_date" binding:"required"`
	EndDate              int64  `json:"end_date"`
	Location             string `json:"location"`
	MaxCapacity          int    `json:"max_capacity"`
	RegistrationDeadline int64  `json:"registration_deadline"`
	Cost                 string `json:"cost"`
}

type EventRegistrationRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

type AttendanceRequest struct {
	EventID        string `json:"event_id" binding:"required"`
	MemberID       string `json:"member_id" binding:"required"`
	AttendanceDate int64  `json:"attendance_date"`
	Present        bool   `json:"present"`
	Notes          string `json:"notes"`
}

type GroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MeetingDay  string `json:"meeting_day"`
	MeetingTime string `json:"meeting_time"`
	Location    string `json:"location"`
	LeaderName  string `json:"leader_name"`
	MaxMembers  int    `json:"max_members"`
}

type GroupMemberRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

type VolunteerRequest struct {
	MemberID     string `json:"member_id" binding:"required"`
	MinistryArea string `json:"ministry_area" binding:"required"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}
