package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

type AttendanceServiceInterface interface {
	RecordAttendance(ctx context.Context, request request_models.AttendanceRequest) (*response_models.AttendanceResponse, error)
	GetAttendanceByEvent(ctx context.Context, eventId string) ([]response_models.AttendanceResponse, error)
	GetAttendanceByMember(ctx context.Context, memberId string) ([]response_models.AttendanceResponse, error)
}

type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	eventRepo      repositories.EventRepository
	memberRepo     repositories.MemberRepository
}

func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	eventRepo repositories.EventRepository,
	memberRepo repositories.MemberRepository,
) AttendanceServiceInterface {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		memberRepo:     memberRepo,
	}
}

func (a *AttendanceService) RecordAttendance(ctx context.Context, request request_models.AttendanceRequest) (*response_models.AttendanceResponse, error) {

	eventId, err := uuid.Parse(request.EventID)
	if err != nil {
		return nil, utils.ValidationError("invalid event id")
	}
	memberId, err := uuid.Parse(request.MemberID)
	if err != nil {
		return nil, utils.ValidationError("invalid member id")
	}

	event, err := a.eventRepo.FindById(ctx, request.EventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	member, err := a.memberRepo.FindById(ctx, request.MemberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	attendance := &db_models.Attendance{
		EventID:        eventId,
		MemberID:       memberId,
		AttendanceDate: request.AttendanceDate,
		Present:        request.Present,
		Notes:          request.Notes,
	}
	if attendance.AttendanceDate == 0 {
		attendance.AttendanceDate = time.Now().Unix()
	}

	if err := a.attendanceRepo.Insert(ctx, attendance); err != nil {
		log.Printf("Error recording attendance: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return attendanceResponse(attendance), nil
}

func (a *AttendanceService) GetAttendanceByEvent(ctx context.Context, eventId string) ([]response_models.AttendanceResponse, error) {
	event, err := a.eventRepo.FindById(ctx, eventId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	rows, err := a.attendanceRepo.ListByEvent(ctx, eventId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attendanceResponses(rows), nil
}

func (a *AttendanceService) GetAttendanceByMember(ctx context.Context, memberId string) ([]response_models.AttendanceResponse, error) {
	member, err := a.memberRepo.FindById(ctx, memberId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	rows, err := a.attendanceRepo.ListByMember(ctx, memberId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attendanceResponses(rows), nil
}

func attendanceResponse(attendance *db_models.Attendance) *response_models.AttendanceResponse {
	return &response_models.AttendanceResponse{
		ID:             attendance.ID.String(),
		EventID:        attendance.EventID.String(),
		MemberID:       attendance.MemberID.String(),
		AttendanceDate: attendance.AttendanceDate,
		Present:        attendance.Present,
		Notes:          attendance.Notes,
	}
}

func attendanceResponses(rows []db_models.Attendance) []response_models.AttendanceResponse {
	responses := make([]response_models.AttendanceResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *attendanceResponse(&rows[i]))
	}
	return responses
}
