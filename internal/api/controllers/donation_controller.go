package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shepherd/internal/models/request_models"
	"shepherd/internal/services"
	"shepherd/pkg/utils"
)

type DonationController struct {
	donationService services.DonationServiceInterface
}

func NewDonationController(donationService services.DonationServiceInterface) *DonationController {
	return &DonationController{
		donationService: donationService,
	}
}

func (d *DonationController) CreateDonation(c *gin.Context) {
	var req request_models.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	donation, err := d.donationService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, donation, "Donation recorded successfully")
}

func (d *DonationController) UpdateDonation(c *gin.Context) {
	var req request_models.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	donation, err := d.donationService.UpdateDonation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, donation, "Donation updated successfully")
}

func (d *DonationController) DeleteDonation(c *gin.Context) {
	if err := d.donationService.DeleteDonation(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Donation deleted successfully")
}

func (d *DonationController) GetDonationById(c *gin.Context) {
	donation, err := d.donationService.GetDonationById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, donation, "Donation fetched successfully")
}

func (d *DonationController) GetAllDonations(c *gin.Context) {
	donations, err := d.donationService.GetAllDonations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, donations, "Donations fetched successfully")
}

func (d *DonationController) GetDonationsByMember(c *gin.Context) {
	donations, err := d.donationService.GetDonationsByMember(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, donations, "Donations fetched successfully")
}

func (d *DonationController) GetTotalByMember(c *gin.Context) {
	total, err := d.donationService.GetTotalByMember(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, total, "Donation total fetched successfully")
}

// GetStatistics breaks down giving per donation type over a unix time range.
func (d *DonationController) GetStatistics(c *gin.Context) {
	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid end date")
		return
	}

	stats, err := d.donationService.GetStatistics(c.Request.Context(), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Donation statistics fetched successfully")
}
