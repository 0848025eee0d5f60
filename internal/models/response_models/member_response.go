package response_models

type MemberResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number,omitempty"`
	Address        string  `json:"address,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	MembershipDate string  `json:"membership_date"`
	BaptismDate    *string `json:"baptism_date,omitempty"`
	Active         bool    `json:"active"`
	FamilyID       string  `json:"family_id,omitempty"`
}

type FamilyResponse struct {
	ID         string `json:"id"`
	FamilyName string `json:"family_name"`
	Address    string `json:"address,omitempty"`
	HomePhone  string `json:"home_phone,omitempty"`
	Members    int    `json:"member_count"`
}
