package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoteTypeGeneral       = "general"
	NoteTypeTherapy       = "therapy"
	NoteTypeAddiction     = "addiction"
	NoteTypeMedication    = "medication"
	NoteTypeTranscription = "transcription"
)

const (
	ButtonPressNoteTitle   = "Episode logged"
	ButtonPressNoteContent = "A craving episode has been recorded"
)

type Note struct {
	BaseModel
	Title   string
	Content string
	Date    time.Time
	UserID  uuid.UUID

	// Cross references: PatientID when a therapist writes about a patient,
	// TherapistID when a patient writes about their therapist.
	PatientID   *uuid.UUID
	TherapistID *uuid.UUID

	IsButtonPress bool
	IsVoiceNote   bool
	VoiceURL      *string
	NoteType      string
}

// NewButtonPressNote builds the fixed craving-episode event note. These
// are events, not free text: title, content and type are not caller
// controlled and no cross references are set.
func NewButtonPressNote(userID uuid.UUID) *Note {
	return &Note{
		Title:         ButtonPressNoteTitle,
		Content:       ButtonPressNoteContent,
		Date:          time.Now(),
		UserID:        userID,
		IsButtonPress: true,
		NoteType:      NoteTypeAddiction,
	}
}

// NewVoiceNote builds a transcribed audio note a therapist records
// against a specific patient.
func NewVoiceNote(title, transcription string, therapistID, patientID uuid.UUID, voiceURL *string) *Note {
	return &Note{
		Title:       title,
		Content:     transcription,
		Date:        time.Now(),
		UserID:      therapistID,
		PatientID:   &patientID,
		IsVoiceNote: true,
		VoiceURL:    voiceURL,
		NoteType:    NoteTypeTranscription,
	}
}
