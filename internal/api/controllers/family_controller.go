package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type FamilyController struct {
	familyService services.FamilyServiceInterface
}

func NewFamilyController(familyService services.FamilyServiceInterface) *FamilyController {
	return &FamilyController{
		familyService: familyService,
	}
}

func (f *FamilyController) CreateFamily(c *gin.Context) {
	var req request_models.FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	family, err := f.familyService.CreateFamily(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, family, "Family created successfully")
}

func (f *FamilyController) UpdateFamily(c *gin.Context) {
	var req request_models.FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	family, err := f.familyService.UpdateFamily(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "Family updated successfully")
}

// DeleteFamily removes the family together with its members.
func (f *FamilyController) DeleteFamily(c *gin.Context) {
	if err := f.familyService.DeleteFamily(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Family deleted successfully")
}

func (f *FamilyController) GetFamilyById(c *gin.Context) {
	family, err := f.familyService.GetFamilyById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "Family fetched successfully")
}

func (f *FamilyController) GetAllFamilies(c *gin.Context) {
	families, err := f.familyService.GetAllFamilies(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, families, "Families fetched successfully")
}
