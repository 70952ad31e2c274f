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

// HandleServiceError maps service-layer sentinel errors onto HTTP
// responses. Provider failures come back as a retryable message rather
// than the underlying cause.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrAppointmentNotFound):
		RespondError(c, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, ErrNotAPatient):
		RespondError(c, http.StatusBadRequest, "The referenced user is not a patient")
	case errors.Is(err, ErrNotATherapist):
		RespondError(c, http.StatusBadRequest, "The referenced user is not a therapist")
	case errors.Is(err, ErrPatientAlreadyLinked):
		RespondError(c, http.StatusConflict, "This patient is already in your list")
	case errors.Is(err, ErrPatientNotLinked):
		RespondError(c, http.StatusBadRequest, "This patient is not in your list")
	case errors.Is(err, ErrNoPendingInvitation):
		RespondError(c, http.StatusConflict, "There is no pending invitation to accept")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired reset token")
	case errors.Is(err, ErrAdviceUnavailable):
		RespondError(c, http.StatusBadGateway, "The assistant is unavailable right now, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
