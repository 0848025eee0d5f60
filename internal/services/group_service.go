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

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, request request_models.GroupRequest) (*response_models.GroupResponse, error)
	UpdateGroup(ctx context.Context, id string, request request_models.GroupRequest) (*response_models.GroupResponse, error)
	DeleteGroup(ctx context.Context, id string) error
	GetGroupById(ctx context.Context, id string) (*response_models.GroupResponse, error)
	GetActiveGroups(ctx context.Context) ([]response_models.GroupResponse, error)
	AddMember(ctx context.Context, groupId string, request request_models.GroupMemberRequest) error
	RemoveMember(ctx context.Context, groupId, memberId string) error
	GetGroupMembers(ctx context.Context, groupId string) ([]response_models.MemberResponse, error)
}

type GroupService struct {
	groupRepo  repositories.GroupRepository
	memberRepo repositories.MemberRepository
}

func NewGroupService(
	groupRepo repositories.GroupRepository,
	memberRepo repositories.MemberRepository,
) GroupServiceInterface {
	return &GroupService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
	}
}

func (g *GroupService) CreateGroup(ctx context.Context, request request_models.GroupRequest) (*response_models.GroupResponse, error) {

	group, err := buildGroup(request)
	if err != nil {
		return nil, err
	}
	group.Active = true

	if err := g.groupRepo.Insert(ctx, group); err != nil {
		log.Printf("Error creating group: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return groupResponse(group), nil
}

func (g *GroupService) UpdateGroup(ctx context.Context, id string, request request_models.GroupRequest) (*response_models.GroupResponse, error) {

	existing, err := g.groupRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrGroupNotFound
	}

	updated, err := buildGroup(request)
	if err != nil {
		return nil, err
	}

	updated.BaseModel = existing.BaseModel
	updated.Active = existing.Active
	if err := g.groupRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating group %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return groupResponse(updated), nil
}

func (g *GroupService) DeleteGroup(ctx context.Context, id string) error {

	existing, err := g.groupRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrGroupNotFound
	}

	if err := g.groupRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting group %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (g *GroupService) GetGroupById(ctx context.Context, id string) (*response_models.GroupResponse, error) {
	group, err := g.groupRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}
	return groupResponse(group), nil
}

func (g *GroupService) GetActiveGroups(ctx context.Context) ([]response_models.GroupResponse, error) {
	groups, err := g.groupRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.GroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, *groupResponse(&groups[i]))
	}
	return responses, nil
}

func (g *GroupService) AddMember(ctx context.Context, groupId string, request request_models.GroupMemberRequest) error {

	group, member, err := g.resolvePair(ctx, groupId, request.MemberID)
	if err != nil {
		return err
	}

	if group.MaxMembers > 0 {
		members, err := g.groupRepo.ListMembers(ctx, group)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if len(members) >= group.MaxMembers {
			return utils.ValidationError("group is full")
		}
	}

	if err := g.groupRepo.AddMember(ctx, group, member); err != nil {
		log.Printf("Error adding member %s to group %s: %v", request.MemberID, groupId, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GroupService) RemoveMember(ctx context.Context, groupId, memberId string) error {

	group, member, err := g.resolvePair(ctx, groupId, memberId)
	if err != nil {
		return err
	}

	if err := g.groupRepo.RemoveMember(ctx, group, member); err != nil {
		log.Printf("Error removing member %s from group %s: %v", memberId, groupId, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GroupService) GetGroupMembers(ctx context.Context, groupId string) ([]response_models.MemberResponse, error) {
	group, err := g.groupRepo.FindById(ctx, groupId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}

	members, err := g.groupRepo.ListMembers(ctx, group)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return memberResponses(members), nil
}

func (g *GroupService) resolvePair(ctx context.Context, groupId, memberId string) (*db_models.Group, *db_models.Member, error) {
	group, err := g.groupRepo.FindById(ctx, groupId)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, nil, utils.ErrGroupNotFound
	}

	member, err := g.memberRepo.FindById(ctx, memberId)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, nil, utils.ErrMemberNotFound
	}
	return group, member, nil
}

func buildGroup(request request_models.GroupRequest) (*db_models.Group, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, utils.ValidationError("group name cannot be blank")
	}
	if request.MaxMembers < 0 {
		return nil, utils.ValidationError("max members cannot be negative")
	}

	return &db_models.Group{
		Name:        name,
		Description: strings.TrimSpace(request.Description),
		MeetingDay:  strings.TrimSpace(request.MeetingDay),
		MeetingTime: strings.TrimSpace(request.MeetingTime),
		Location:    strings.TrimSpace(request.Location),
		LeaderName:  strings.TrimSpace(request.LeaderName),
		MaxMembers:  request.MaxMembers,
	}, nil
}

func groupResponse(group *db_models.Group) *response_models.GroupResponse {
	return &response_models.GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		MeetingDay:  group.MeetingDay,
		MeetingTime: group.MeetingTime,
		Location:    group.Location,
		LeaderName:  group.LeaderName,
		MaxMembers:  group.MaxMembers,
		Active:      group.Active,
	}
}
