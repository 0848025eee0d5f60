package db_models

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	DonationTithe        = "TITHE"
	DonationOffering     = "OFFERING"
	DonationBuildingFund = "BUILDING_FUND"
	DonationMissions     = "MISSIONS"
	DonationSpecial      = "SPECIAL"
	DonationOther        = "OTHER"
)

var DonationTypes = []string{
	DonationTithe,
	DonationOffering,
	DonationBuildingFund,
	DonationMissions,
	DonationSpecial,
	DonationOther,
}

func ValidDonationType(t string) bool {
	for _, dt := range DonationTypes {
		if dt == t {
			return true
		}
	}
	return false
}

type Donation struct {
	BaseModel
	// AmountCents keeps the amount exact; the API renders it as a decimal
	// string.
	AmountCents   int64     `gorm:"not null" json:"amount_cents"`
	DonationType  string    `gorm:"not null" json:"donation_type"`
	DonationDate  int64     `gorm:"not null" json:"donation_date"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Anonymous     bool      `gorm:"not null;default:false" json:"anonymous"`
	Notes         string    `json:"notes,omitempty"`
	MemberID      uuid.UUID `gorm:"type:uuid;not null" json:"member_id"`
	Member        *Member   `gorm:"foreignKey:MemberID" json:"-"`
}

// Amount renders the fixed-point cents as a decimal string, e.g. "100.00".
func (d *Donation) Amount() string {
	return FormatCents(d.AmountCents)
}

func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// DonorName resolves the display name for receipts and audit lines.
func (d *Donation) DonorName() string {
	if d.Anonymous {
		return "Anonymous"
	}
	if d.Member == nil {
		return "Unknown"
	}
	return d.Member.FullName()
}
