package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shepherd/internal/events"
	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

func newMemberService(t *testing.T) (MemberServiceInterface, *events.Dispatcher, repositories.MemberRepository, repositories.FamilyRepository) {
	db := newTestDB(t)
	dispatcher := newTestDispatcher(t)
	memberRepo := repositories.NewMemberRepository(db)
	familyRepo := repositories.NewFamilyRepository(db)
	return NewMemberService(memberRepo, familyRepo, dispatcher), dispatcher, memberRepo, familyRepo
}

func TestCreateMemberPublishesExactlyOneEvent(t *testing.T) {
	svc, dispatcher, _, _ := newMemberService(t)

	var published int64
	require.NoError(t, dispatcher.SubscribeQueued(events.MemberCreated, events.Consumer{
		Name: "counter",
		Handle: func(ctx context.Context, payload json.RawMessage) error {
			atomic.AddInt64(&published, 1)
			return nil
		},
	}))

	member, err := svc.CreateMember(context.Background(), memberRequest("John", "Smith", "john@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "John Smith", member.FullName)
	assert.True(t, member.Active)

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&published) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A second read-back should not retrigger the event.
	_, err = svc.GetMemberById(context.Background(), member.ID)
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&published))
}

func TestUpdateAndDeleteMemberPublishNothing(t *testing.T) {
	svc, dispatcher, _, _ := newMemberService(t)

	var published int64
	require.NoError(t, dispatcher.SubscribeQueued(events.MemberCreated, events.Consumer{
		Name: "counter",
		Handle: func(ctx context.Context, payload json.RawMessage) error {
			atomic.AddInt64(&published, 1)
			return nil
		},
	}))

	created, err := svc.CreateMember(context.Background(), memberRequest("Jane", "Doe", "jane@example.com"))
	require.NoError(t, err)

	req := memberRequest("Jane", "Doe-Smith", "jane@example.com")
	_, err = svc.UpdateMember(context.Background(), created.ID, req)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(context.Background(), created.ID))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&published), "only the create should publish")
}

func TestCreateMemberRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	_, err := svc.CreateMember(context.Background(), memberRequest("Ann", "Lee", "ann@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateMember(context.Background(), memberRequest("Other", "Person", "ann@example.com"))
	assert.True(t, errors.Is(err, utils.ErrValidation))
}

func TestCreateMemberValidation(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	cases := []struct {
		name string
		req  request_models.MemberRequest
	}{
		{"blank first name", memberRequest("", "Lee", "x@example.com")},
		{"blank last name", memberRequest("Ann", "", "x@example.com")},
		{"bad email", memberRequest("Ann", "Lee", "not-an-email")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateMember(context.Background(), tc.req)
			assert.True(t, errors.Is(err, utils.ErrValidation))
		})
	}
}

func TestCreateMemberWithUnknownFamily(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	req := memberRequest("Ann", "Lee", "ann@example.com")
	req.FamilyID = "11111111-2222-3333-4444-555555555555"

	_, err := svc.CreateMember(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrFamilyNotFound)
}

func TestGetMembersByFamily(t *testing.T) {
	svc, _, memberRepo, familyRepo := newMemberService(t)

	family := &db_models.Family{FamilyName: "Smith"}
	require.NoError(t, familyRepo.Insert(context.Background(), family))

	for _, email := range []string{"a@example.com", "b@example.com"} {
		member := &db_models.Member{
			FirstName:      "F",
			LastName:       "Smith",
			Email:          email,
			MembershipDate: "2024-01-01",
			Active:         true,
			FamilyID:       &family.ID,
		}
		require.NoError(t, memberRepo.Insert(context.Background(), member))
	}
	require.NoError(t, memberRepo.Insert(context.Background(), &db_models.Member{
		FirstName:      "Not",
		LastName:       "InFamily",
		Email:          "c@example.com",
		MembershipDate: "2024-01-01",
		Active:         true,
	}))

	members, err := svc.GetMembersByFamily(context.Background(), family.ID.String())
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestSearchMembers(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	_, err := svc.CreateMember(context.Background(), memberRequest("Jonathan", "Edwards", "jon@example.com"))
	require.NoError(t, err)
	_, err = svc.CreateMember(context.Background(), memberRequest("Mary", "Jones", "mary@example.com"))
	require.NoError(t, err)
	_, err = svc.CreateMember(context.Background(), memberRequest("Peter", "Brown", "peter@example.com"))
	require.NoError(t, err)

	found, err := svc.SearchMembers(context.Background(), "jon")
	require.NoError(t, err)
	assert.Len(t, found, 2, "matches first name and last name, case-insensitive")

	_, err = svc.SearchMembers(context.Background(), "   ")
	assert.True(t, errors.Is(err, utils.ErrValidation))
}

func TestGetMembersByMembershipDateRange(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	early := memberRequest("Early", "Bird", "early@example.com")
	early.MembershipDate = "2023-02-01"
	late := memberRequest("Late", "Comer", "late@example.com")
	late.MembershipDate = "2024-06-15"

	_, err := svc.CreateMember(context.Background(), early)
	require.NoError(t, err)
	_, err = svc.CreateMember(context.Background(), late)
	require.NoError(t, err)

	members, err := svc.GetMembersByMembershipDateRange(context.Background(), "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "late@example.com", members[0].Email)

	_, err = svc.GetMembersByMembershipDateRange(context.Background(), "", "")
	assert.True(t, errors.Is(err, utils.ErrValidation))
}

func TestGetMemberByEmailAndNotFound(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	created, err := svc.CreateMember(context.Background(), memberRequest("Ann", "Lee", "Ann@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", created.Email, "emails are normalized to lower case")

	member, err := svc.GetMemberByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, member.ID)

	_, err = svc.GetMemberById(context.Background(), "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}
