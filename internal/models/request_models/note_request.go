package request_models

import "time"

// SaveNoteRequest creates a note when ID is empty and otherwise
// merge-updates the existing note: only non-nil fields are written.
type SaveNoteRequest struct {
	ID          string     `json:"id,omitempty" binding:"omitempty,uuid"`
	Title       *string    `json:"title,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	PatientID   *string    `json:"patient_id,omitempty" binding:"omitempty,uuid"`
	TherapistID *string    `json:"therapist_id,omitempty" binding:"omitempty,uuid"`
	VoiceURL    *string    `json:"voice_url,omitempty"`
	NoteType    *string    `json:"note_type,omitempty" binding:"omitempty,oneof=general therapy addiction medication transcription"`
}

type SaveVoiceNoteRequest struct {
	PatientID     string  `json:"patient_id" binding:"required,uuid"`
	Title         string  `json:"title" binding:"required"`
	Transcription string  `json:"transcription" binding:"required"`
	VoiceURL      *string `json:"voice_url,omitempty"`
}
