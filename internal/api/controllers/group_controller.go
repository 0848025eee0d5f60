package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type GroupController struct {
	groupService services.GroupServiceInterface
}

func NewGroupController(groupService services.GroupServiceInterface) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

func (g *GroupController) CreateGroup(c *gin.Context) {
	var req request_models.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := g.groupService.CreateGroup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, group, "Group created successfully")
}

func (g *GroupController) UpdateGroup(c *gin.Context) {
	var req request_models.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := g.groupService.UpdateGroup(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group updated successfully")
}

func (g *GroupController) DeleteGroup(c *gin.Context) {
	if err := g.groupService.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Group deleted successfully")
}

func (g *GroupController) GetGroupById(c *gin.Context) {
	group, err := g.groupService.GetGroupById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group fetched successfully")
}

func (g *GroupController) GetActiveGroups(c *gin.Context) {
	groups, err := g.groupService.GetActiveGroups(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

func (g *GroupController) AddMember(c *gin.Context) {
	var req request_models.GroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := g.groupService.AddMember(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Member added to group successfully")
}

func (g *GroupController) RemoveMember(c *gin.Context) {
	if err := g.groupService.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("memberId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member removed from group successfully")
}

func (g *GroupController) GetGroupMembers(c *gin.Context) {
	members, err := g.groupService.GetGroupMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Group members fetched successfully")
}
