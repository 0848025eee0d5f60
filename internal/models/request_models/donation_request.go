package request_models

type DonationRequest struct {
	// Amount as a decimal string, e.g. "100.00".
	Amount        string `json:"amount" binding:"required"`
	DonationType  string `json:"donation_type" binding:"required"`
	DonationDate  int64  `json:"donation_date"`
	PaymentMethod string `json:"payment_method"`
	Anonymous     bool   `json:"anonymous"`
	Notes         string `json:"notes"`
	MemberID      string `json:"member_id" binding:"required"`
}
