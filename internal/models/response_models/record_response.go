package response_models

import "time"

type NoteResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Date          time.Time `json:"date"`
	UserID        string    `json:"user_id"`
	PatientID     string    `json:"patient_id,omitempty"`
	TherapistID   string    `json:"therapist_id,omitempty"`
	IsButtonPress bool      `json:"is_button_press"`
	IsVoiceNote   bool      `json:"is_voice_note"`
	VoiceURL      string    `json:"voice_url,omitempty"`
	NoteType      string    `json:"note_type"`
}

type AppointmentResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	UserID        string    `json:"user_id"`
	RelatedUserID string    `json:"related_user_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IsCompleted   bool      `json:"is_completed"`
	ReminderSet   bool      `json:"reminder_set"`
	Type          string    `json:"type"`
}

type BookedSessionResponse struct {
	TherapistAppointmentID string `json:"therapist_appointment_id"`
	PatientAppointmentID   string `json:"patient_appointment_id"`
}
