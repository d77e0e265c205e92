package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service-layer sentinel errors into HTTP
// responses. Signature and lookup failures are permanent rejections; anything
// unrecognized is treated as a retryable infrastructure fault.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSignatureMismatch):
		RespondError(c, http.StatusUnauthorized, "Invalid notification signature")
	case errors.Is(err, ErrDonationNotFound):
		RespondError(c, http.StatusNotFound, "Donation not found")
	case errors.Is(err, ErrProgramNotFound):
		RespondError(c, http.StatusNotFound, "Program not found")
	case errors.Is(err, ErrReferralNotFound):
		RespondError(c, http.StatusNotFound, "Referral code not found")
	case errors.Is(err, ErrAmountMismatch):
		RespondError(c, http.StatusConflict, "Notification amount does not match donation")
	case errors.Is(err, ErrInvalidAmount):
		RespondError(c, http.StatusBadRequest, "Invalid donation amount")
	case errors.Is(err, ErrSimulateDisabled):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Invalid pagination parameters")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
