package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

func TestRecordAndListAttendance(t *testing.T) {
	db := newTestDB(t)
	eventRepo := repositories.NewEventRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	svc := NewAttendanceService(repositories.NewAttendanceRepository(db), eventRepo, memberRepo)

	event := &db_models.Event{Name: "Sunday Service", StartDate: time.Now().Unix()}
	require.NoError(t, eventRepo.Insert(context.Background(), event))
	member := seedMember(t, db, "Shows", "Up", "present@example.com")

	recorded, err := svc.RecordAttendance(context.Background(), request_models.AttendanceRequest{
		EventID:  event.ID.String(),
		MemberID: member.ID.String(),
		Present:  true,
	})
	require.NoError(t, err)
	assert.True(t, recorded.Present)
	assert.NotZero(t, recorded.AttendanceDate, "defaults to now when unset")

	byEvent, err := svc.GetAttendanceByEvent(context.Background(), event.ID.String())
	require.NoError(t, err)
	assert.Len(t, byEvent, 1)

	byMember, err := svc.GetAttendanceByMember(context.Background(), member.ID.String())
	require.NoError(t, err)
	assert.Len(t, byMember, 1)
}

func TestRecordAttendanceUnknownTargets(t *testing.T) {
	db := newTestDB(t)
	eventRepo := repositories.NewEventRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	svc := NewAttendanceService(repositories.NewAttendanceRepository(db), eventRepo, memberRepo)

	member := seedMember(t, db, "Lost", "Event", "lost@example.com")

	_, err := svc.RecordAttendance(context.Background(), request_models.AttendanceRequest{
		EventID:  "11111111-2222-3333-4444-555555555555",
		MemberID: member.ID.String(),
	})
	assert.ErrorIs(t, err, utils.ErrEventNotFound)

	event := &db_models.Event{Name: "Known", StartDate: 1}
	require.NoError(t, eventRepo.Insert(context.Background(), event))

	_, err = svc.RecordAttendance(context.Background(), request_models.AttendanceRequest{
		EventID:  event.ID.String(),
		MemberID: "11111111-2222-3333-4444-555555555555",
	})
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}
