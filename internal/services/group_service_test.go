package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shepherd/internal/models/request_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

func newGroupService(t *testing.T) (GroupServiceInterface, *gorm.DB) {
	db := newTestDB(t)
	return NewGroupService(repositories.NewGroupRepository(db), repositories.NewMemberRepository(db)), db
}

func groupRequest(name string) request_models.GroupRequest {
	return request_models.GroupRequest{Name: name}
}

func TestGroupMembershipLifecycle(t *testing.T) {
	svc, db := newGroupService(t)

	group, err := svc.CreateGroup(context.Background(), groupRequest("Choir"))
	require.NoError(t, err)
	assert.True(t, group.Active)

	member := seedMember(t, db, "Sings", "Loud", "choir@example.com")

	require.NoError(t, svc.AddMember(context.Background(), group.ID,
		request_models.GroupMemberRequest{MemberID: member.ID.String()}))

	members, err := svc.GetGroupMembers(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "choir@example.com", members[0].Email)

	require.NoError(t, svc.RemoveMember(context.Background(), group.ID, member.ID.String()))

	members, err = svc.GetGroupMembers(context.Background(), group.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestAddMemberHonorsGroupCapacity(t *testing.T) {
	svc, db := newGroupService(t)

	req := groupRequest("Tiny Circle")
	req.MaxMembers = 1
	group, err := svc.CreateGroup(context.Background(), req)
	require.NoError(t, err)

	first := seedMember(t, db, "First", "Seat", "one@example.com")
	second := seedMember(t, db, "No", "Seat", "two@example.com")

	require.NoError(t, svc.AddMember(context.Background(), group.ID,
		request_models.GroupMemberRequest{MemberID: first.ID.String()}))

	err = svc.AddMember(context.Background(), group.ID,
		request_models.GroupMemberRequest{MemberID: second.ID.String()})
	assert.True(t, errors.Is(err, utils.ErrValidation))
}

func TestGroupLookupsReportNotFound(t *testing.T) {
	svc, _ := newGroupService(t)

	_, err := svc.GetGroupById(context.Background(), "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, utils.ErrGroupNotFound)

	group, err := svc.CreateGroup(context.Background(), groupRequest("Ushers"))
	require.NoError(t, err)

	err = svc.AddMember(context.Background(), group.ID,
		request_models.GroupMemberRequest{MemberID: "11111111-2222-3333-4444-555555555555"})
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}

func TestGetActiveGroupsSkipsInactive(t *testing.T) {
	svc, db := newGroupService(t)

	active, err := svc.CreateGroup(context.Background(), groupRequest("Active Group"))
	require.NoError(t, err)

	inactive, err := svc.CreateGroup(context.Background(), groupRequest("Dormant Group"))
	require.NoError(t, err)
	require.NoError(t, db.Table("groups").Where("id = ?", inactive.ID).Update("active", false).Error)

	groups, err := svc.GetActiveGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, active.ID, groups[0].ID)
}
