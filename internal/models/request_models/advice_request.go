package request_models

type TherapistAdviceRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
	Issue     string `json:"issue,omitempty"`
}
