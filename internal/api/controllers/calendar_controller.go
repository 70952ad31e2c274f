package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lemmequit/internal/models/response_models"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

type CalendarController struct {
	calendarService services.CalendarServiceInterface
	recordService   services.RecordServiceInterface
}

func NewCalendarController(
	calendarService services.CalendarServiceInterface,
	recordService services.RecordServiceInterface,
) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
		recordService:   recordService,
	}
}

// Agenda godoc
// @Summary The caller's appointments grouped by calendar day
// @Tags Calendar
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /calendar [get]
func (cc *CalendarController) Agenda(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	appointments, err := cc.recordService.ListAppointmentsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	buckets := cc.calendarService.GroupAppointmentsByDay(appointments)
	groups := make([]response_models.DayGroup, 0, len(buckets))
	for _, bucket := range buckets {
		groups = append(groups, response_models.DayGroup{
			Day:          bucket.Day,
			Appointments: toAppointmentResponses(bucket.Appointments),
		})
	}

	utils.RespondSuccess(c, groups, "Calendar fetched successfully")
}

// SearchNotes godoc
// @Summary Search the caller's notes by title or content
// @Tags Calendar
// @Produce json
// @Param q query string false "Search text"
// @Param patient_id query string false "Restrict to one patient"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /calendar/notes/search [get]
func (cc *CalendarController) SearchNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	notes, err := cc.recordService.ListNotesForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if raw := c.Query("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid patient id")
			return
		}
		notes = cc.calendarService.FilterNotesByPatient(notes, patientID)
	}

	matched := cc.calendarService.SearchNotes(notes, c.Query("q"))
	utils.RespondSuccess(c, toNoteResponses(matched), "Notes fetched successfully")
}

// PatientNotes godoc
// @Summary Notes of every actively linked patient, fetched concurrently
// @Description One patient's fetch failure is reported inline and never hides the others
// @Tags Calendar
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /calendar/patients/notes [get]
func (cc *CalendarController) PatientNotes(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	results, err := cc.calendarService.CollectPatientNotes(c.Request.Context(), therapistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.PatientNotes, 0, len(results))
	for i := range results {
		entry := response_models.PatientNotes{
			PatientID:   results[i].Patient.ID.String(),
			PatientName: results[i].Patient.Name,
			Notes:       toNoteResponses(results[i].Notes),
		}
		if results[i].Err != nil {
			entry.Error = "failed to fetch notes"
		}
		out = append(out, entry)
	}

	utils.RespondSuccess(c, out, "Patient notes fetched successfully")
}
