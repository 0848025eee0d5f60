package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

type VolunteerServiceInterface interface {
	CreateVolunteer(ctx context.Context, request request_models.VolunteerRequest) (*response_models.VolunteerResponse, error)
	UpdateVolunteer(ctx context.Context, id string, request request_models.VolunteerRequest) (*response_models.VolunteerResponse, error)
	DeactivateVolunteer(ctx context.Context, id string) error
	GetVolunteerById(ctx context.Context, id string) (*response_models.VolunteerResponse, error)
	GetActiveVolunteers(ctx context.Context) ([]response_models.VolunteerResponse, error)
	GetVolunteersByMinistryArea(ctx context.Context, area string) ([]response_models.VolunteerResponse, error)
}

type VolunteerService struct {
	volunteerRepo repositories.VolunteerRepository
	memberRepo    repositories.MemberRepository
}

func NewVolunteerService(
	volunteerRepo repositories.VolunteerRepository,
	memberRepo repositories.MemberRepository,
) VolunteerServiceInterface {
	return &VolunteerService{
		volunteerRepo: volunteerRepo,
		memberRepo:    memberRepo,
	}
}

func (v *VolunteerService) CreateVolunteer(ctx context.Context, request request_models.VolunteerRequest) (*response_models.VolunteerResponse, error) {

	memberId, err := uuid.Parse(request.MemberID)
	if err != nil {
		return nil, utils.ValidationError("invalid member id")
	}
	member, err := v.memberRepo.FindById(ctx, request.MemberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	area := strings.TrimSpace(request.MinistryArea)
	if area == "" {
		return nil, utils.ValidationError("ministry area cannot be blank")
	}

	volunteer := &db_models.Volunteer{
		MemberID:     memberId,
		MinistryArea: area,
		Skills:       strings.TrimSpace(request.Skills),
		Availability: strings.TrimSpace(request.Availability),
		Active:       true,
	}

	if err := v.volunteerRepo.Insert(ctx, volunteer); err != nil {
		log.Printf("Error creating volunteer: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return volunteerResponse(volunteer), nil
}

func (v *VolunteerService) UpdateVolunteer(ctx context.Context, id string, request request_models.VolunteerRequest) (*response_models.VolunteerResponse, error) {

	volunteer, err := v.volunteerRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if volunteer == nil {
		return nil, utils.ErrVolunteerNotFound
	}

	area := strings.TrimSpace(request.MinistryArea)
	if area == "" {
		return nil, utils.ValidationError("ministry area cannot be blank")
	}

	volunteer.MinistryArea = area
	volunteer.Skills = strings.TrimSpace(request.Skills)
	volunteer.Availability = strings.TrimSpace(request.Availability)

	if err := v.volunteerRepo.Update(ctx, volunteer); err != nil {
		log.Printf("Error updating volunteer %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return volunteerResponse(volunteer), nil
}

func (v *VolunteerService) DeactivateVolunteer(ctx context.Context, id string) error {

	volunteer, err := v.volunteerRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if volunteer == nil {
		return utils.ErrVolunteerNotFound
	}

	volunteer.Active = false
	if err := v.volunteerRepo.Update(ctx, volunteer); err != nil {
		log.Printf("Error deactivating volunteer %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (v *VolunteerService) GetVolunteerById(ctx context.Context, id string) (*response_models.VolunteerResponse, error) {
	volunteer, err := v.volunteerRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if volunteer == nil {
		return nil, utils.ErrVolunteerNotFound
	}
	return volunteerResponse(volunteer), nil
}

func (v *VolunteerService) GetActiveVolunteers(ctx context.Context) ([]response_models.VolunteerResponse, error) {
	volunteers, err := v.volunteerRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return volunteerResponses(volunteers), nil
}

func (v *VolunteerService) GetVolunteersByMinistryArea(ctx context.Context, area string) ([]response_models.VolunteerResponse, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return nil, utils.ValidationError("ministry area cannot be blank")
	}
	volunteers, err := v.volunteerRepo.ListByMinistryArea(ctx, area)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return volunteerResponses(volunteers), nil
}

func volunteerResponse(volunteer *db_models.Volunteer) *response_models.VolunteerResponse {
	return &response_models.VolunteerResponse{
		ID:           volunteer.ID.String(),
		MemberID:     volunteer.MemberID.String(),
		MinistryArea: volunteer.MinistryArea,
		Skills:       volunteer.Skills,
		Availability: volunteer.Availability,
		Active:       volunteer.Active,
	}
}

func volunteerResponses(volunteers []db_models.Volunteer) []response_models.VolunteerResponse {
	responses := make([]response_models.VolunteerResponse, 0, len(volunteers))
	for i := range volunteers {
		responses = append(responses, *volunteerResponse(&volunteers[i]))
	}
	return responses
}
