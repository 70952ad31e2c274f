package request_models

import "time"

// SaveAppointmentRequest follows the same merge contract as notes. It
// writes a single record; booking a shared therapy session goes through
// BookSessionRequest instead.
type SaveAppointmentRequest struct {
	ID            string     `json:"id,omitempty" binding:"omitempty,uuid"`
	Title         *string    `json:"title,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	RelatedUserID *string    `json:"related_user_id,omitempty" binding:"omitempty,uuid"`
	Notes         *string    `json:"notes,omitempty"`
	IsCompleted   *bool      `json:"is_completed,omitempty"`
	ReminderSet   *bool      `json:"reminder_set,omitempty"`
	Type          *string    `json:"type,omitempty" binding:"omitempty,oneof=therapy medication generalNote"`
}

type BookSessionRequest struct {
	PatientID string    `json:"patient_id" binding:"required,uuid"`
	Title     string    `json:"title" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Notes     string    `json:"notes,omitempty"`
}
