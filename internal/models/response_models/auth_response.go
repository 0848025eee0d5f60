package response_models

import "shepherd/pkg/utils"

type AuthResponse struct {
	utils.TokenPair
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	MemberID  string `json:"member_id,omitempty"`
	LastLogin int64  `json:"last_login,omitempty"`
}
