package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type VolunteerController struct {
	volunteerService services.VolunteerServiceInterface
}

func NewVolunteerController(volunteerService services.VolunteerServiceInterface) *VolunteerController {
	return &VolunteerController{
		volunteerService: volunteerService,
	}
}

func (v *VolunteerController) CreateVolunteer(c *gin.Context) {
	var req request_models.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	volunteer, err := v.volunteerService.CreateVolunteer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, volunteer, "Volunteer created successfully")
}

func (v *VolunteerController) UpdateVolunteer(c *gin.Context) {
	var req request_models.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	volunteer, err := v.volunteerService.UpdateVolunteer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, volunteer, "Volunteer updated successfully")
}

// DeactivateVolunteer keeps the record but takes the volunteer off the
// active roster.
func (v *VolunteerController) DeactivateVolunteer(c *gin.Context) {
	if err := v.volunteerService.DeactivateVolunteer(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Volunteer deactivated successfully")
}

func (v *VolunteerController) GetVolunteerById(c *gin.Context) {
	volunteer, err := v.volunteerService.GetVolunteerById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, volunteer, "Volunteer fetched successfully")
}

func (v *VolunteerController) GetActiveVolunteers(c *gin.Context) {
	volunteers, err := v.volunteerService.GetActiveVolunteers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, volunteers, "Volunteers fetched successfully")
}

func (v *VolunteerController) GetVolunteersByMinistryArea(c *gin.Context) {
	volunteers, err := v.volunteerService.GetVolunteersByMinistryArea(c.Request.Context(), c.Param("area"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, volunteers, "Volunteers fetched successfully")
}
