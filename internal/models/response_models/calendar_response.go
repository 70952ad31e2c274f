package response_models

// DayGroup is one calendar day of appointments, day formatted 2006-01-02.
type DayGroup struct {
	Day          string                `json:"day"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// PatientNotes is the result of fetching one linked patient's notes
// during a fan-out. Error carries that patient's failure without
// affecting siblings.
type PatientNotes struct {
	PatientID   string         `json:"patient_id"`
	PatientName string         `json:"patient_name"`
	Notes       []NoteResponse `json:"notes"`
	Error       string         `json:"error,omitempty"`
}
