package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"danakita/internal/services"
	"danakita/pkg/utils"
)

type LeaderboardController struct {
	leaderboardService services.LeaderboardServiceInterface
}

func NewLeaderboardController(leaderboardService services.LeaderboardServiceInterface) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

func (lc *LeaderboardController) TopDonorsHandler(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	resp, err := lc.leaderboardService.TopDonors(limit, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched leaderboard")
}
