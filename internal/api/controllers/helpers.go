package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/models/response_models"
)

// currentUserID reads the authenticated user id set by the JWT
// middleware. ok is false when the token subject is not a valid uuid,
// which should not happen behind the middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	resp := response_models.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Sex:       user.Sex,
		Age:       user.Age,
		Sport:     user.Sport,
		Addiction: user.Addiction,
		Hobbies:   user.Hobbies,
	}
	if user.TherapistID != nil {
		resp.TherapistID = user.TherapistID.String()
	}
	if user.RelationshipStatus != nil {
		resp.RelationshipStatus = *user.RelationshipStatus
	}
	resp.PatientIDs = user.PatientIDs
	if user.ActivePatientID != nil {
		resp.ActivePatientID = user.ActivePatientID.String()
	}
	return resp
}

func toNoteResponse(note *db_models.Note) response_models.NoteResponse {
	resp := response_models.NoteResponse{
		ID:            note.ID.String(),
		Title:         note.Title,
		Content:       note.Content,
		Date:          note.Date,
		UserID:        note.UserID.String(),
		IsButtonPress: note.IsButtonPress,
		IsVoiceNote:   note.IsVoiceNote,
		NoteType:      note.NoteType,
	}
	if note.PatientID != nil {
		resp.PatientID = note.PatientID.String()
	}
	if note.TherapistID != nil {
		resp.TherapistID = note.TherapistID.String()
	}
	if note.VoiceURL != nil {
		resp.VoiceURL = *note.VoiceURL
	}
	return resp
}

func toNoteResponses(notes []db_models.Note) []response_models.NoteResponse {
	out := make([]response_models.NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return out
}

func toAppointmentResponse(appointment *db_models.Appointment) response_models.AppointmentResponse {
	resp := response_models.AppointmentResponse{
		ID:          appointment.ID.String(),
		Title:       appointment.Title,
		Date:        appointment.Date,
		UserID:      appointment.UserID.String(),
		IsCompleted: appointment.IsCompleted,
		ReminderSet: appointment.ReminderSet,
		Type:        appointment.Type,
	}
	if appointment.RelatedUserID != nil {
		resp.RelatedUserID = appointment.RelatedUserID.String()
	}
	if appointment.Notes != nil {
		resp.Notes = *appointment.Notes
	}
	return resp
}

func toAppointmentResponses(appointments []db_models.Appointment) []response_models.AppointmentResponse {
	out := make([]response_models.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, toAppointmentResponse(&appointments[i]))
	}
	return out
}
