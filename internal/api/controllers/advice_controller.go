package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lemmequit/internal/models/request_models"
	"lemmequit/internal/models/response_models"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

type AdviceController struct {
	adviceService services.AdviceServiceInterface
}

func NewAdviceController(adviceService services.AdviceServiceInterface) *AdviceController {
	return &AdviceController{adviceService: adviceService}
}

// Ask godoc
// @Summary Request personalised advice for the authenticated patient
// @Tags Advice
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /advice [post]
func (a *AdviceController) Ask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	advice, err := a.adviceService.RequestAdvice(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AdviceResponse{Advice: advice}, "Advice generated")
}

// Consult godoc
// @Summary Request guidance about one of the therapist's patients
// @Tags Advice
// @Accept json
// @Produce json
// @Param request body request_models.TherapistAdviceRequest true "Consultation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /advice/consult [post]
func (a *AdviceController) Consult(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.TherapistAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid patient id")
		return
	}

	advice, err := a.adviceService.RequestTherapistAdvice(c.Request.Context(), therapistID, patientID, req.Issue)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AdviceResponse{Advice: advice}, "Advice generated")
}

// History godoc
// @Summary List the caller's past advice exchanges, newest first
// @Tags Advice
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /advice/history [get]
func (a *AdviceController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	entries, err := a.adviceService.History(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.AdviceHistoryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, response_models.AdviceHistoryEntry{
			ID:        entries[i].ID.String(),
			Prompt:    entries[i].Prompt,
			Response:  entries[i].Response,
			CreatedAt: entries[i].CreatedAt,
		})
	}

	utils.RespondSuccess(c, out, "History fetched successfully")
}
