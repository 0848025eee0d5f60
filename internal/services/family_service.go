package services

import (
	"context"
	"log"
	"strings"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

type FamilyServiceInterface interface {
	CreateFamily(ctx context.Context, request request_models.FamilyRequest) (*response_models.FamilyResponse, error)
	UpdateFamily(ctx context.Context, id string, request request_models.FamilyRequest) (*response_models.FamilyResponse, error)
	DeleteFamily(ctx context.Context, id string) error
	GetFamilyById(ctx context.Context, id string) (*response_models.FamilyResponse, error)
	GetAllFamilies(ctx context.Context) ([]response_models.FamilyResponse, error)
}

type FamilyService struct {
	familyRepo repositories.FamilyRepository
}

func NewFamilyService(familyRepo repositories.FamilyRepository) FamilyServiceInterface {
	return &FamilyService{
		familyRepo: familyRepo,
	}
}

func (f *FamilyService) CreateFamily(ctx context.Context, request request_models.FamilyRequest) (*response_models.FamilyResponse, error) {

	name := strings.TrimSpace(request.FamilyName)
	if name == "" {
		return nil, utils.ValidationError("family name cannot be blank")
	}

	family := &db_models.Family{
		FamilyName: name,
		Address:    strings.TrimSpace(request.Address),
		HomePhone:  strings.TrimSpace(request.HomePhone),
	}

	if err := f.familyRepo.Insert(ctx, family); err != nil {
		log.Printf("Error creating family: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return f.familyResponse(ctx, family)
}

func (f *FamilyService) UpdateFamily(ctx context.Context, id string, request request_models.FamilyRequest) (*response_models.FamilyResponse, error) {

	family, err := f.familyRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}

	name := strings.TrimSpace(request.FamilyName)
	if name == "" {
		return nil, utils.ValidationError("family name cannot be blank")
	}

	family.FamilyName = name
	family.Address = strings.TrimSpace(request.Address)
	family.HomePhone = strings.TrimSpace(request.HomePhone)

	if err := f.familyRepo.Update(ctx, family); err != nil {
		log.Printf("Error updating family %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return f.familyResponse(ctx, family)
}

func (f *FamilyService) DeleteFamily(ctx context.Context, id string) error {

	family, err := f.familyRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if family == nil {
		return utils.ErrFamilyNotFound
	}

	if err := f.familyRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting family %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FamilyService) GetFamilyById(ctx context.Context, id string) (*response_models.FamilyResponse, error) {
	family, err := f.familyRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}
	return f.familyResponse(ctx, family)
}

func (f *FamilyService) GetAllFamilies(ctx context.Context) ([]response_models.FamilyResponse, error) {
	families, err := f.familyRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FamilyResponse, 0, len(families))
	for i := range families {
		resp, err := f.familyResponse(ctx, &families[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (f *FamilyService) familyResponse(ctx context.Context, family *db_models.Family) (*response_models.FamilyResponse, error) {
	count, err := f.familyRepo.CountMembers(ctx, family.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.FamilyResponse{
		ID:         family.ID.String(),
		FamilyName: family.FamilyName,
		Address:    family.Address,
		HomePhone:  family.HomePhone,
		Members:    int(count),
	}, nil
}
