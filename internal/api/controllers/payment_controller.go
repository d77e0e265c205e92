package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"danakita/internal/gateway"
	"danakita/internal/models/request_models"
	"danakita/internal/models/response_models"
	"danakita/internal/services"
	"danakita/pkg/utils"
)

type PaymentController struct {
	settlementService services.SettlementServiceInterface
}

func NewPaymentController(settlementService services.SettlementServiceInterface) *PaymentController {
	return &PaymentController{
		settlementService: settlementService,
	}
}

// HandleNotificationHandler is the provider webhook. A 200 acknowledgment
// stops the provider's retries, duplicates included; authentication failures
// and unknown orders are permanent rejections; storage faults come back as
// 500 so the provider redelivers.
func (pc *PaymentController) HandleNotificationHandler(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req request_models.PaymentNotificationRequest
	if err := json.Unmarshal(rawBody, &req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid notification payload")
		return
	}
	if req.OrderID == "" || req.TransactionStatus == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing order_id or transaction_status")
		return
	}

	notification := gateway.Notification{
		OrderID:           req.OrderID,
		TransactionStatus: req.TransactionStatus,
		FraudStatus:       req.FraudStatus,
		StatusCode:        req.StatusCode,
		GrossAmount:       req.GrossAmount,
		PaymentType:       req.PaymentType,
		SignatureKey:      req.SignatureKey,
		TransactionTime:   req.TransactionTime,
		RawPayload:        rawBody,
	}

	outcome, err := pc.settlementService.ProcessNotification(notification, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NotificationAck{
		OrderID: outcome.Donation.OrderID,
		Status:  string(outcome.Donation.Status),
		Outcome: string(outcome.Kind),
	}, "Notification processed")
}

// HandleSimulateHandler settles a sandbox donation without a provider
// round trip. Disabled deployments answer 404.
func (pc *PaymentController) HandleSimulateHandler(c *gin.Context) {
	var req request_models.SimulateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid simulate payload")
		return
	}

	outcome, err := pc.settlementService.SimulateSettlement(req.OrderID, req.Amount, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NotificationAck{
		OrderID: outcome.Donation.OrderID,
		Status:  string(outcome.Donation.Status),
		Outcome: string(outcome.Kind),
	}, "Simulated settlement processed")
}
