package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lemmequit/internal/models/request_models"
	"lemmequit/internal/models/response_models"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

type AppointmentsController struct {
	recordService  services.RecordServiceInterface
	accountService services.AccountServiceInterface
}

func NewAppointmentsController(
	recordService services.RecordServiceInterface,
	accountService services.AccountServiceInterface,
) *AppointmentsController {
	return &AppointmentsController{
		recordService:  recordService,
		accountService: accountService,
	}
}

// SaveAppointment godoc
// @Summary Create or merge-update a single appointment
// @Description Writes one record only; shared therapy sessions go through /appointments/book
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body request_models.SaveAppointmentRequest true "Appointment payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /appointments [post]
func (a *AppointmentsController) SaveAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := a.recordService.SaveAppointment(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Appointment saved successfully")
}

// BookSession godoc
// @Summary Book a therapy session with a patient
// @Description Creates the therapist's appointment and the patient's mirror record
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body request_models.BookSessionRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /appointments/book [post]
func (a *AppointmentsController) BookSession(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	therapist, err := a.accountService.GetUser(c.Request.Context(), therapistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	therapistApptID, patientApptID, err := a.recordService.BookTherapySession(c.Request.Context(), therapist, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BookedSessionResponse{
		TherapistAppointmentID: therapistApptID.String(),
		PatientAppointmentID:   patientApptID.String(),
	}, "Session booked")
}

// ListAppointments godoc
// @Summary List the caller's appointments, soonest first
// @Tags Appointments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /appointments [get]
func (a *AppointmentsController) ListAppointments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	appointments, err := a.recordService.ListAppointmentsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toAppointmentResponses(appointments), "Appointments fetched successfully")
}

// ListAppointmentsForDay godoc
// @Summary List the caller's appointments on one calendar day
// @Tags Appointments
// @Produce json
// @Param date query string true "Day (2006-01-02)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /appointments/day [get]
func (a *AppointmentsController) ListAppointmentsForDay(c *gin.Context) {
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

	appointments, err := a.recordService.ListAppointmentsInRange(c.Request.Context(), userID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toAppointmentResponses(appointments), "Appointments fetched successfully")
}

// DeleteAppointment godoc
// @Summary Delete an appointment and its mirror
// @Description Mirror cleanup is best effort; the primary delete succeeds regardless
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (a *AppointmentsController) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	if err := a.recordService.DeleteAppointmentWithMirror(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Appointment deleted")
}

// Reconcile godoc
// @Summary Recreate missing mirror appointments for the caller
// @Tags Appointments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /appointments/reconcile [post]
func (a *AppointmentsController) Reconcile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	recreated, err := a.recordService.ReconcileMirrors(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"recreated": recreated}, "Reconciliation completed")
}
