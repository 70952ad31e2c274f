package response_models

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	Sex       string   `json:"sex,omitempty"`
	Age       *int     `json:"age,omitempty"`
	Sport     string   `json:"sport,omitempty"`
	Addiction string   `json:"addiction,omitempty"`
	Hobbies   []string `json:"hobbies,omitempty"`

	TherapistID        string   `json:"therapist_id,omitempty"`
	RelationshipStatus string   `json:"relationship_status,omitempty"`
	PatientIDs         []string `json:"patient_ids,omitempty"`
	ActivePatientID    string   `json:"active_patient_id,omitempty"`
}
