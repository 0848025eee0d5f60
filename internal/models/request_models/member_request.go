package request_models

type MemberRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	PhoneNumber    string  `json:"phone_number"`
	Address        string  `json:"address"`
	DateOfBirth    *string `json:"date_of_birth"`
	MembershipDate string  `json:"membership_date"`
	BaptismDate    *string `json:"baptism_date"`
	Active         *bool   `json:"active"`
	FamilyID       string  `json:"family_id"`
}

type FamilyRequest struct {
	FamilyName string `json:"family_name" binding:"required"`
	Address    string `json:"address"`
	HomePhone  string `json:"home_phone"`
}
