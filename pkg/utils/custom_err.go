package utils

import "errors"

var (
	// Not found
	ErrUserNotFound        = errors.New("user not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Validation
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrNotAPatient          = errors.New("user is not a patient")
	ErrNotATherapist        = errors.New("user is not a therapist")
	ErrPatientAlreadyLinked = errors.New("patient already linked to this therapist")
	ErrPatientNotLinked     = errors.New("patient is not in this therapist's list")

	// Invalid state
	ErrNoPendingInvitation = errors.New("no pending invitation to accept")

	// Auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	// Provider
	ErrAdviceUnavailable = errors.New("advice provider unavailable")

	ErrDatabaseError = errors.New("database error")
)
