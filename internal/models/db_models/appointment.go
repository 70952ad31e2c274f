package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentTypeTherapy     = "therapy"
	AppointmentTypeMedication  = "medication"
	AppointmentTypeGeneralNote = "generalNote"
)

// Appointment is one user's view of a calendar entry. A therapy session
// booked between a therapist and a patient exists as TWO appointments
// with independent ids: one owned by each side, each pointing at the
// other through RelatedUserID. The pair shares a timestamp but no key,
// so mirror cleanup is a best-effort day-window match.
type Appointment struct {
	BaseModel
	Title         string
	Date          time.Time
	UserID        uuid.UUID
	RelatedUserID *uuid.UUID
	Notes         *string
	IsCompleted   bool
	ReminderSet   bool
	Type          string
}

// IsMirrorOf reports whether a is the counterpart record of other:
// owned by other's related user and pointing back at other's owner.
func (a *Appointment) IsMirrorOf(other *Appointment) bool {
	if other.RelatedUserID == nil || a.RelatedUserID == nil {
		return false
	}
	return a.UserID == *other.RelatedUserID && *a.RelatedUserID == other.UserID
}
