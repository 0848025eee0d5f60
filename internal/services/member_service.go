package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"shepherd/internal/events"
	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

type MemberServiceInterface interface {
	CreateMember(ctx context.Context, request request_models.MemberRequest) (*response_models.MemberResponse, error)
	UpdateMember(ctx context.Context, id string, request request_models.MemberRequest) (*response_models.MemberResponse, error)
	DeleteMember(ctx context.Context, id string) error
	GetMemberById(ctx context.Context, id string) (*response_models.MemberResponse, error)
	GetMemberByEmail(ctx context.Context, email string) (*response_models.MemberResponse, error)
	GetActiveMembers(ctx context.Context) ([]response_models.MemberResponse, error)
	GetMembersByFamily(ctx context.Context, familyId string) ([]response_models.MemberResponse, error)
	SearchMembers(ctx context.Context, term string) ([]response_models.MemberResponse, error)
	GetMembersByMembershipDateRange(ctx context.Context, start, end string) ([]response_models.MemberResponse, error)
}

type MemberService struct {
	memberRepo repositories.MemberRepository
	familyRepo repositories.FamilyRepository
	dispatcher *events.Dispatcher
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	familyRepo repositories.FamilyRepository,
	dispatcher *events.Dispatcher,
) MemberServiceInterface {
	return &MemberService{
		memberRepo: memberRepo,
		familyRepo: familyRepo,
		dispatcher: dispatcher,
	}
}

func (m *MemberService) CreateMember(ctx context.Context, request request_models.MemberRequest) (*response_models.MemberResponse, error) {

	member, err := m.buildMember(ctx, request)
	if err != nil {
		return nil, err
	}

	exists, err := m.memberRepo.ExistsByEmail(ctx, member.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ValidationError("email already exists")
	}

	if err := m.memberRepo.Insert(ctx, member); err != nil {
		log.Printf("Error creating member: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Create is the only mutating operation that publishes.
	m.dispatcher.Publish(ctx, events.MemberCreated, member)

	return memberResponse(member), nil
}

func (m *MemberService) UpdateMember(ctx context.Context, id string, request request_models.MemberRequest) (*response_models.MemberResponse, error) {

	existing, err := m.memberRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrMemberNotFound
	}

	updated, err := m.buildMember(ctx, request)
	if err != nil {
		return nil, err
	}

	if updated.Email != existing.Email {
		taken, err := m.memberRepo.ExistsByEmail(ctx, updated.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if taken {
			return nil, utils.ValidationError("email already exists")
		}
	}

	updated.BaseModel = existing.BaseModel
	if err := m.memberRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating member %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return memberResponse(updated), nil
}

func (m *MemberService) DeleteMember(ctx context.Context, id string) error {

	existing, err := m.memberRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrMemberNotFound
	}

	if err := m.memberRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting member %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (m *MemberService) GetMemberById(ctx context.Context, id string) (*response_models.MemberResponse, error) {
	member, err := m.memberRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return memberResponse(member), nil
}

func (m *MemberService) GetMemberByEmail(ctx context.Context, email string) (*response_models.MemberResponse, error) {
	member, err := m.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return memberResponse(member), nil
}

func (m *MemberService) GetActiveMembers(ctx context.Context) ([]response_models.MemberResponse, error) {
	members, err := m.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return memberResponses(members), nil
}

func (m *MemberService) GetMembersByFamily(ctx context.Context, familyId string) ([]response_models.MemberResponse, error) {
	family, err := m.familyRepo.FindById(ctx, familyId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}

	members, err := m.memberRepo.ListByFamily(ctx, familyId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return memberResponses(members), nil
}

func (m *MemberService) SearchMembers(ctx context.Context, term string) ([]response_models.MemberResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, utils.ValidationError("search term cannot be blank")
	}
	members, err := m.memberRepo.Search(ctx, term)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return memberResponses(members), nil
}

func (m *MemberService) GetMembersByMembershipDateRange(ctx context.Context, start, end string) ([]response_models.MemberResponse, error) {
	if start == "" || end == "" {
		return nil, utils.ValidationError("start and end dates are required")
	}
	members, err := m.memberRepo.ListByMembershipDateRange(ctx, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return memberResponses(members), nil
}

func (m *MemberService) buildMember(ctx context.Context, request request_models.MemberRequest) (*db_models.Member, error) {

	firstName := strings.TrimSpace(request.FirstName)
	lastName := strings.TrimSpace(request.LastName)
	email := strings.ToLower(strings.TrimSpace(request.Email))

	switch {
	case firstName == "":
		return nil, utils.ValidationError("first name cannot be blank")
	case lastName == "":
		return nil, utils.ValidationError("last name cannot be blank")
	case email == "" || !emailPattern.MatchString(email):
		return nil, utils.ValidationError("valid email is required")
	}

	membershipDate := request.MembershipDate
	if membershipDate == "" {
		membershipDate = time.Now().Format("2006-01-02")
	}

	member := &db_models.Member{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		PhoneNumber:    strings.TrimSpace(request.PhoneNumber),
		Address:        strings.TrimSpace(request.Address),
		DateOfBirth:    request.DateOfBirth,
		MembershipDate: membershipDate,
		BaptismDate:    request.BaptismDate,
		Active:         true,
	}
	if request.Active != nil {
		member.Active = *request.Active
	}

	if request.FamilyID != "" {
		familyId, err := uuid.Parse(request.FamilyID)
		if err != nil {
			return nil, utils.ValidationError("invalid family id")
		}
		family, err := m.familyRepo.FindById(ctx, request.FamilyID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if family == nil {
			return nil, utils.ErrFamilyNotFound
		}
		member.FamilyID = &familyId
	}

	return member, nil
}

func memberResponse(member *db_models.Member) *response_models.MemberResponse {
	resp := &response_models.MemberResponse{
		ID:             member.ID.String(),
		FirstName:      member.FirstName,
		LastName:       member.LastName,
		FullName:       member.FullName(),
		Email:          member.Email,
		PhoneNumber:    member.PhoneNumber,
		Address:        member.Address,
		DateOfBirth:    member.DateOfBirth,
		MembershipDate: member.MembershipDate,
		BaptismDate:    member.BaptismDate,
		Active:         member.Active,
	}
	if member.FamilyID != nil {
		resp.FamilyID = member.FamilyID.String()
	}
	return resp
}

func memberResponses(members []db_models.Member) []response_models.MemberResponse {
	responses := make([]response_models.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *memberResponse(&members[i]))
	}
	return responses
}
