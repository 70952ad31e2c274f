package utils

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"lemmequit/internal/models/db_models"
)

func completePatient() *db_models.User {
	age := 29
	return &db_models.User{
		Role:      db_models.RolePatient,
		Sex:       "Male",
		Age:       &age,
		Sport:     "tennis",
		Addiction: "alcohol",
		Hobbies:   pq.StringArray{"reading", "hiking"},
	}
}

func TestBuildPatientPrompt_CompleteProfile(t *testing.T) {
	prompt := BuildPatientPrompt(completePatient())

	assert.Contains(t, prompt, "29 years old")
	assert.Contains(t, prompt, "male")
	assert.Contains(t, prompt, "alcohol")
	assert.Contains(t, prompt, "I enjoy playing sport")
	assert.Contains(t, prompt, "reading, hiking")
}

func TestBuildPatientPrompt_NoSport(t *testing.T) {
	patient := completePatient()
	patient.Sport = ""

	prompt := BuildPatientPrompt(patient)
	assert.Contains(t, prompt, "I do not play any sport")
}

func TestBuildPatientPrompt_IncompleteProfileFallsBack(t *testing.T) {
	patient := completePatient()
	patient.Addiction = ""

	assert.Equal(t, BuildDefaultPrompt(), BuildPatientPrompt(patient))
}

func TestBuildPatientPrompt_TherapistFallsBack(t *testing.T) {
	therapist := completePatient()
	therapist.Role = db_models.RoleTherapist

	assert.Equal(t, BuildDefaultPrompt(), BuildPatientPrompt(therapist))
}

func TestBuildTherapistPrompt(t *testing.T) {
	prompt := BuildTherapistPrompt(completePatient(), "social isolation")

	assert.Contains(t, prompt, "Age: 29")
	assert.Contains(t, prompt, "Addiction: alcohol")
	assert.Contains(t, prompt, "they enjoy playing sport")
	assert.Contains(t, prompt, "social isolation")
}

func TestBuildTherapistPrompt_NoIssue(t *testing.T) {
	prompt := BuildTherapistPrompt(completePatient(), "")
	assert.NotContains(t, prompt, "The issue I am working on")
}

func TestBuildTherapistPrompt_IncompleteProfile(t *testing.T) {
	patient := completePatient()
	patient.Hobbies = nil

	prompt := BuildTherapistPrompt(patient, "anything")
	assert.Equal(t, "I need advice on how to help a patient struggling with an addiction.", prompt)
}
