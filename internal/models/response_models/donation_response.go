package response_models

type DonationResponse struct {
	ID            string `json:"id"`
	Amount        string `json:"amount"`
	DonationType  string `json:"donation_type"`
	DonationDate  int64  `json:"donation_date"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Anonymous     bool   `json:"anonymous"`
	Notes         string `json:"notes,omitempty"`
	MemberID      string `json:"member_id"`
}

type DonationStatistics struct {
	TotalAmount string            `json:"total_amount"`
	ByType      map[string]string `json:"by_type"`
	StartDate   int64             `json:"start_date"`
	EndDate     int64             `json:"end_date"`
}

type DonationTotal struct {
	MemberID string `json:"member_id"`
	Total    string `json:"total"`
}
