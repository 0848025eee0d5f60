package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

func (m *MemberController) CreateMember(c *gin.Context) {
	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, member, "Member created successfully")
}

func (m *MemberController) UpdateMember(c *gin.Context) {
	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member updated successfully")
}

func (m *MemberController) DeleteMember(c *gin.Context) {
	if err := m.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member deleted successfully")
}

func (m *MemberController) GetMemberById(c *gin.Context) {
	member, err := m.memberService.GetMemberById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member fetched successfully")
}

func (m *MemberController) GetActiveMembers(c *gin.Context) {
	members, err := m.memberService.GetActiveMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

func (m *MemberController) GetMemberByEmail(c *gin.Context) {
	member, err := m.memberService.GetMemberByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member fetched successfully")
}

func (m *MemberController) GetMembersByFamily(c *gin.Context) {
	members, err := m.memberService.GetMembersByFamily(c.Request.Context(), c.Param("familyId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// SearchMembers matches the term against first and last name.
func (m *MemberController) SearchMembers(c *gin.Context) {
	members, err := m.memberService.SearchMembers(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

func (m *MemberController) GetMembersByMembershipDateRange(c *gin.Context) {
	members, err := m.memberService.GetMembersByMembershipDateRange(
		c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}
