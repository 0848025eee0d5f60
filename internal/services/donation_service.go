package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"shepherd/internal/events"
	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

type DonationServiceInterface interface {
	CreateDonation(ctx context.Context, request request_models.DonationRequest) (*response_models.DonationResponse, error)
	UpdateDonation(ctx context.Context, id string, request request_models.DonationRequest) (*response_models.DonationResponse, error)
	DeleteDonation(ctx context.Context, id string) error
	GetDonationById(ctx context.Context, id string) (*response_models.DonationResponse, error)
	GetAllDonations(ctx context.Context) ([]response_models.DonationResponse, error)
	GetDonationsByMember(ctx context.Context, memberId string) ([]response_models.DonationResponse, error)
	GetTotalByMember(ctx context.Context, memberId string) (*response_models.DonationTotal, error)
	GetStatistics(ctx context.Context, start, end int64) (*response_models.DonationStatistics, error)
}

type DonationService struct {
	donationRepo repositories.DonationRepository
	memberRepo   repositories.MemberRepository
	dispatcher   *events.Dispatcher
}

func NewDonationService(
	donationRepo repositories.DonationRepository,
	memberRepo repositories.MemberRepository,
	dispatcher *events.Dispatcher,
) DonationServiceInterface {
	return &DonationService{
		donationRepo: donationRepo,
		memberRepo:   memberRepo,
		dispatcher:   dispatcher,
	}
}

func (d *DonationService) CreateDonation(ctx context.Context, request request_models.DonationRequest) (*response_models.DonationResponse, error) {

	donation, err := d.buildDonation(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := d.donationRepo.Insert(ctx, donation); err != nil {
		log.Printf("Error creating donation: %v", err)
		return nil, utils.ErrDatabaseError
	}

	d.dispatcher.Publish(ctx, events.DonationCreated, donation)

	return donationResponse(donation), nil
}

func (d *DonationService) UpdateDonation(ctx context.Context, id string, request request_models.DonationRequest) (*response_models.DonationResponse, error) {

	existing, err := d.donationRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrDonationNotFound
	}

	updated, err := d.buildDonation(ctx, request)
	if err != nil {
		return nil, err
	}

	updated.BaseModel = existing.BaseModel
	if err := d.donationRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating donation %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return donationResponse(updated), nil
}

func (d *DonationService) DeleteDonation(ctx context.Context, id string) error {

	existing, err := d.donationRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrDonationNotFound
	}

	if err := d.donationRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting donation %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (d *DonationService) GetDonationById(ctx context.Context, id string) (*response_models.DonationResponse, error) {
	donation, err := d.donationRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if donation == nil {
		return nil, utils.ErrDonationNotFound
	}
	return donationResponse(donation), nil
}

func (d *DonationService) GetAllDonations(ctx context.Context) ([]response_models.DonationResponse, error) {
	donations, err := d.donationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return donationResponses(donations), nil
}

func (d *DonationService) GetDonationsByMember(ctx context.Context, memberId string) ([]response_models.DonationResponse, error) {
	if err := d.requireMember(ctx, memberId); err != nil {
		return nil, err
	}
	donations, err := d.donationRepo.ListByMember(ctx, memberId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return donationResponses(donations), nil
}

func (d *DonationService) GetTotalByMember(ctx context.Context, memberId string) (*response_models.DonationTotal, error) {
	if err := d.requireMember(ctx, memberId); err != nil {
		return nil, err
	}
	total, err := d.donationRepo.SumByMember(ctx, memberId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DonationTotal{
		MemberID: memberId,
		Total:    db_models.FormatCents(total),
	}, nil
}

func (d *DonationService) GetStatistics(ctx context.Context, start, end int64) (*response_models.DonationStatistics, error) {
	if end < start {
		return nil, utils.ValidationError("end date must not precede start date")
	}

	stats := &response_models.DonationStatistics{
		ByType:    make(map[string]string, len(db_models.DonationTypes)),
		StartDate: start,
		EndDate:   end,
	}

	var grandTotal int64
	for _, donationType := range db_models.DonationTypes {
		donations, err := d.donationRepo.ListByTypeAndDateRange(ctx, donationType, start, end)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		var subtotal int64
		for i := range donations {
			subtotal += donations[i].AmountCents
		}
		grandTotal += subtotal
		stats.ByType[donationType] = db_models.FormatCents(subtotal)
	}
	stats.TotalAmount = db_models.FormatCents(grandTotal)

	return stats, nil
}

func (d *DonationService) requireMember(ctx context.Context, memberId string) error {
	member, err := d.memberRepo.FindById(ctx, memberId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}
	return nil
}

func (d *DonationService) buildDonation(ctx context.Context, request request_models.DonationRequest) (*db_models.Donation, error) {

	cents, err := parseAmountCents(request.Amount)
	if err != nil {
		return nil, err
	}
	if cents <= 0 {
		return nil, utils.ValidationError("amount must be positive")
	}

	if !db_models.ValidDonationType(request.DonationType) {
		return nil, utils.ValidationError("invalid donation type")
	}

	memberId, err := uuid.Parse(request.MemberID)
	if err != nil {
		return nil, utils.ValidationError("invalid member id")
	}
	if err := d.requireMember(ctx, request.MemberID); err != nil {
		return nil, err
	}

	return &db_models.Donation{
		AmountCents:   cents,
		DonationType:  request.DonationType,
		DonationDate:  request.DonationDate,
		PaymentMethod: strings.TrimSpace(request.PaymentMethod),
		Anonymous:     request.Anonymous,
		Notes:         strings.TrimSpace(request.Notes),
		MemberID:      memberId,
	}, nil
}

// parseAmountCents parses a decimal money string ("100", "100.5", "100.00")
// into cents without going through floats.
func parseAmountCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, utils.ValidationError("amount cannot be blank")
	}

	// The sign lives on the string, not on the parsed units: "-0.50"
	// parses to zero units and would otherwise come out positive.
	negative := strings.HasPrefix(amount, "-")
	if negative {
		amount = amount[1:]
	}

	whole, frac, _ := strings.Cut(amount, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, utils.ValidationError("invalid amount")
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		frac += "0"
		fallthrough
	case 2:
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, utils.ValidationError("invalid amount")
		}
	default:
		return 0, utils.ValidationError("amount supports at most two decimal places")
	}

	cents += units * 100
	if negative {
		cents = -cents
	}
	return cents, nil
}

func donationResponse(donation *db_models.Donation) *response_models.DonationResponse {
	return &response_models.DonationResponse{
		ID:            donation.ID.String(),
		Amount:        donation.Amount(),
		DonationType:  donation.DonationType,
		DonationDate:  donation.DonationDate,
		PaymentMethod: donation.PaymentMethod,
		Anonymous:     donation.Anonymous,
		Notes:         donation.Notes,
		MemberID:      donation.MemberID.String(),
	}
}

func donationResponses(donations []db_models.Donation) []response_models.DonationResponse {
	responses := make([]response_models.DonationResponse, 0, len(donations))
	for i := range donations {
		responses = append(responses, *donationResponse(&donations[i]))
	}
	return responses
}
