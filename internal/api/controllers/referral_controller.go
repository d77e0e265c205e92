package controllers

import (
	"github.com/gin-gonic/gin"

	"danakita/internal/services"
	"danakita/pkg/utils"
)

type ReferralController struct {
	referralService services.ReferralServiceInterface
}

func NewReferralController(referralService services.ReferralServiceInterface) *ReferralController {
	return &ReferralController{
		referralService: referralService,
	}
}

func (rc *ReferralController) CodeStatsHandler(c *gin.Context) {
	code := c.Param("code")

	resp, err := rc.referralService.CodeStats(code, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched referral stats")
}
