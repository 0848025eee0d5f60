package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type AttendanceController struct {
	attendanceService services.AttendanceServiceInterface
}

func NewAttendanceController(attendanceService services.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

func (a *AttendanceController) RecordAttendance(c *gin.Context) {
	var req request_models.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attendance, err := a.attendanceService.RecordAttendance(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, attendance, "Attendance recorded successfully")
}

func (a *AttendanceController) GetAttendanceByEvent(c *gin.Context) {
	rows, err := a.attendanceService.GetAttendanceByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Attendance fetched successfully")
}

func (a *AttendanceController) GetAttendanceByMember(c *gin.Context) {
	rows, err := a.attendanceService.GetAttendanceByMember(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Attendance fetched successfully")
}
