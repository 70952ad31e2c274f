package request_models

type ProposeLinkRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
}

type AddPatientByEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AssignPatientRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
}

type SetActivePatientRequest struct {
	// Empty clears the therapist's active patient.
	PatientID string `json:"patient_id" binding:"omitempty,uuid"`
}
