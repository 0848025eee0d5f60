package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/models/response_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, request request_models.EventRequest) (*response_models.EventResponse, error)
	UpdateEvent(ctx context.Context, id string, request request_models.EventRequest) (*response_models.EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEventById(ctx context.Context, id string) (*response_models.EventResponse, error)
	GetAllEvents(ctx context.Context) ([]response_models.EventResponse, error)
	RegisterMember(ctx context.Context, eventId string, request request_models.EventRegistrationRequest) error
}

type EventService struct {
	eventRepo  repositories.EventRepository
	memberRepo repositories.MemberRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	memberRepo repositories.MemberRepository,
) EventServiceInterface {
	return &EventService{
		eventRepo:  eventRepo,
		memberRepo: memberRepo,
	}
}

func (e *EventService) CreateEvent(ctx context.Context, request request_models.EventRequest) (*response_models.EventResponse, error) {

	event, err := buildEvent(request)
	if err != nil {
		return nil, err
	}

	if err := e.eventRepo.Insert(ctx, event); err != nil {
		log.Printf("Error creating event: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return e.eventResponse(ctx, event)
}

func (e *EventService) UpdateEvent(ctx context.Context, id string, request request_models.EventRequest) (*response_models.EventResponse, error) {

	existing, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrEventNotFound
	}

	updated, err := buildEvent(request)
	if err != nil {
		return nil, err
	}

	updated.BaseModel = existing.BaseModel
	if err := e.eventRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating event %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return e.eventResponse(ctx, updated)
}

func (e *EventService) DeleteEvent(ctx context.Context, id string) error {

	existing, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEventNotFound
	}

	if err := e.eventRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting event %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (e *EventService) GetEventById(ctx context.Context, id string) (*response_models.EventResponse, error) {
	event, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return e.eventResponse(ctx, event)
}

func (e *EventService) GetAllEvents(ctx context.Context) ([]response_models.EventResponse, error) {
	events, err := e.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		resp, err := e.eventResponse(ctx, &events[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (e *EventService) RegisterMember(ctx context.Context, eventId string, request request_models.EventRegistrationRequest) error {

	event, err := e.eventRepo.FindById(ctx, eventId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	memberId, err := uuid.Parse(request.MemberID)
	if err != nil {
		return utils.ValidationError("invalid member id")
	}
	member, err := e.memberRepo.FindById(ctx, request.MemberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	if event.RegistrationDeadline > 0 && time.Now().Unix() > event.RegistrationDeadline {
		return utils.ErrRegistrationClosed
	}

	if event.MaxCapacity > 0 {
		count, err := e.eventRepo.CountRegistrations(ctx, eventId)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if count >= int64(event.MaxCapacity) {
			return utils.ErrEventFull
		}
	}

	reg := &db_models.EventRegistration{
		EventID:  event.ID,
		MemberID: memberId,
	}
	if err := e.eventRepo.InsertRegistration(ctx, reg); err != nil {
		// The unique (event, member) index rejects duplicate registrations.
		if isUniqueViolation(err) {
			return utils.ValidationError("member is already registered")
		}
		log.Printf("Error registering member %s for event %s: %v", memberId, eventId, err)
		return utils.ErrDatabaseError
	}

	return nil
}

func buildEvent(request request_models.EventRequest) (*db_models.Event, error) {

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, utils.ValidationError("event name cannot be blank")
	}
	if request.StartDate <= 0 {
		return nil, utils.ValidationError("start date is required")
	}
	if request.EndDate > 0 && request.EndDate < request.StartDate {
		return nil, utils.ValidationError("end date must not precede start date")
	}
	if request.MaxCapacity < 0 {
		return nil, utils.ValidationError("max capacity cannot be negative")
	}

	var costCents int64
	if request.Cost != "" {
		cents, err := parseAmountCents(request.Cost)
		if err != nil {
			return nil, err
		}
		if cents < 0 {
			return nil, utils.ValidationError("cost cannot be negative")
		}
		costCents = cents
	}

	return &db_models.Event{
		Name:                 name,
		Description:          strings.TrimSpace(request.Description),
		StartDate:            request.StartDate,
		EndDate:              request.EndDate,
		Location:             strings.TrimSpace(request.Location),
		MaxCapacity:          request.MaxCapacity,
		RegistrationDeadline: request.RegistrationDeadline,
		CostCents:            costCents,
	}, nil
}

func (e *EventService) eventResponse(ctx context.Context, event *db_models.Event) (*response_models.EventResponse, error) {
	count, err := e.eventRepo.CountRegistrations(ctx, event.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.EventResponse{
		ID:                   event.ID.String(),
		Name:                 event.Name,
		Description:          event.Description,
		StartDate:            event.StartDate,
		EndDate:              event.EndDate,
		Location:             event.Location,
		MaxCapacity:          event.MaxCapacity,
		RegistrationDeadline: event.RegistrationDeadline,
		Registered:           int(count),
	}
	if event.CostCents > 0 {
		resp.Cost = db_models.FormatCents(event.CostCents)
	}
	return resp, nil
}
