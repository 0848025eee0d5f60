package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

func (e *EventController) UpdateEvent(c *gin.Context) {
	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event updated successfully")
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	if err := e.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}

func (e *EventController) GetEventById(c *gin.Context) {
	event, err := e.eventService.GetEventById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

func (e *EventController) GetAllEvents(c *gin.Context) {
	events, err := e.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// RegisterMember signs a member up for the event, enforcing capacity and
// the registration deadline.
func (e *EventController) RegisterMember(c *gin.Context) {
	var req request_models.EventRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.eventService.RegisterMember(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Member registered successfully")
}
