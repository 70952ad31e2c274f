package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lemmequit/internal/models/request_models"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

type NotesController struct {
	recordService services.RecordServiceInterface
}

func NewNotesController(recordService services.RecordServiceInterface) *NotesController {
	return &NotesController{
		recordService: recordService,
	}
}

// SaveNote godoc
// @Summary Create or merge-update a note
// @Description Without an id a new note is created; with an id only the provided fields are updated
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body request_models.SaveNoteRequest true "Note payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes [post]
func (n *NotesController) SaveNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := n.recordService.SaveNote(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Note saved successfully")
}

// LogEpisode godoc
// @Summary Record a craving episode
// @Description One-tap event note with fixed content
// @Tags Notes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/episode [post]
func (n *NotesController) LogEpisode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	id, err := n.recordService.LogCravingEpisode(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Episode recorded")
}

// SaveVoiceNote godoc
// @Summary Save a transcribed voice note against a patient
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body request_models.SaveVoiceNoteRequest true "Voice note payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/voice [post]
func (n *NotesController) SaveVoiceNote(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.SaveVoiceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := n.recordService.SaveVoiceNote(c.Request.Context(), therapistID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Voice note saved")
}

// ListNotes godoc
// @Summary List the caller's notes, most recent first
// @Tags Notes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes [get]
func (n *NotesController) ListNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	notes, err := n.recordService.ListNotesForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toNoteResponses(notes), "Notes fetched successfully")
}

// ListPatientNotes godoc
// @Summary List notes cross-referencing a patient
// @Tags Notes
// @Produce json
// @Param id path string true "Patient id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/patient/{id} [get]
func (n *NotesController) ListPatientNotes(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid patient id")
		return
	}

	notes, err := n.recordService.ListNotesForPatient(c.Request.Context(), patientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toNoteResponses(notes), "Notes fetched successfully")
}

// ListEpisodes godoc
// @Summary List craving episodes on one calendar day
// @Tags Notes
// @Produce json
// @Param date query string true "Day (2006-01-02)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/episodes [get]
func (n *NotesController) ListEpisodes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid date, expected 2006-01-02")
		return
	}

	notes, err := n.recordService.ListButtonPressNotesInRange(c.Request.Context(), userID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toNoteResponses(notes), "Episodes fetched successfully")
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Deleting a missing note is a successful no-op
// @Tags Notes
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (n *NotesController) DeleteNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid note id")
		return
	}

	if err := n.recordService.DeleteNote(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Note deleted")
}
