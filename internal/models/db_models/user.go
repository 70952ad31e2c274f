package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	RolePatient   = "patient"
	RoleTherapist = "therapist"
)

// Relationship status values on the patient side of a link.
// "rejected" is declared but no flow currently sets it.
const (
	RelationshipPending  = "pending"
	RelationshipActive   = "active"
	RelationshipRejected = "rejected"
)

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string

	// Patient profile. Empty strings mean "not filled in yet";
	// Age is a pointer so an unanswered age is distinguishable from 0.
	Sex       string
	Age       *int
	Sport     string
	Addiction string
	Hobbies   pq.StringArray `gorm:"type:text[]"`

	// Patient side of the therapist link. A patient has at most one
	// therapist at a time.
	TherapistID        *uuid.UUID
	RelationshipStatus *string

	// Therapist side. ActivePatientID must be an element of PatientIDs
	// or nil; RelationshipService enforces this.
	PatientIDs      pq.StringArray `gorm:"type:text[]"`
	ActivePatientID *uuid.UUID
}

func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

func (u *User) IsTherapist() bool {
	return u.Role == RoleTherapist
}

// HasCompleteProfile reports whether every profile field the advice
// prompt needs is present. Sport counts as answered either way: an empty
// sport means "does not play sport", not "unknown", once the rest of the
// profile is filled in.
func (u *User) HasCompleteProfile() bool {
	return u.Sex != "" && u.Age != nil && u.Addiction != "" && len(u.Hobbies) > 0
}

func (u *User) HasPatient(patientID uuid.UUID) bool {
	id := patientID.String()
	for _, p := range u.PatientIDs {
		if p == id {
			return true
		}
	}
	return false
}
