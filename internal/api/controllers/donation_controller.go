package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"danakita/internal/models/request_models"
	"danakita/internal/services"
	"danakita/pkg/utils"
)

type DonationController struct {
	donationService services.DonationServiceInterface
}

func NewDonationController(donationService services.DonationServiceInterface) *DonationController {
	return &DonationController{
		donationService: donationService,
	}
}

func (dc *DonationController) CreateDonationHandler(c *gin.Context) {
	var req request_models.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid donation payload")
		return
	}

	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid program id")
		return
	}

	input := services.CreateDonationInput{
		ProgramID:    programID,
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
		IsAnonymous:  req.IsAnonymous,
		AmountMinor:  req.Amount,
		ReferralCode: req.ReferralCode,
	}

	// Identity is optional on checkout; a valid bearer token keys the donor's
	// leaderboard entry by user id instead of email.
	if userID := c.GetString("user_id"); userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			input.UserID = &parsed
		}
	}

	resp, err := dc.donationService.CreateDonation(input, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Donation created")
}

func (dc *DonationController) GetDonationHandler(c *gin.Context) {
	orderID := c.Param("orderId")

	resp, err := dc.donationService.GetDonation(orderID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched donation")
}

func (dc *DonationController) DonationQRHandler(c *gin.Context) {
	orderID := c.Param("orderId")

	png, err := dc.donationService.DonationQR(orderID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
