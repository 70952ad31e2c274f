package utils

import (
	"fmt"
	"strings"

	"lemmequit/internal/models/db_models"
)

const AdviceSystemPrompt = "You are an empathetic, professional therapeutic " +
	"assistant helping people recover from addictions. Give practical, " +
	"supportive and motivating advice."

// BuildPatientPrompt renders the personalised advice prompt for a
// patient. If the profile is incomplete it falls back to the generic
// prompt rather than failing: an unfinished profile must never block
// asking for help.
func BuildPatientPrompt(user *db_models.User) string {
	if !user.IsPatient() || !user.HasCompleteProfile() {
		return BuildDefaultPrompt()
	}

	playsSport := "I do not play any sport"
	if user.Sport != "" {
		playsSport = "I enjoy playing sport"
	}

	return fmt.Sprintf(
		"Hi! I am a patient, %d years old, %s, recovering from an addiction to %s. %s and my hobbies are: %s. "+
			"Considering today's weather, what do you recommend I do to keep myself entertained?",
		*user.Age,
		strings.ToLower(user.Sex),
		user.Addiction,
		playsSport,
		strings.Join(user.Hobbies, ", "),
	)
}

func BuildDefaultPrompt() string {
	return "I am a person trying to overcome an addiction. " +
		"What activities do you recommend, given today's weather, to keep myself entertained and avoid a relapse?"
}

// BuildTherapistPrompt renders the therapist-side consultation prompt
// over a patient's profile. Degrades to a generic request when the
// patient profile is incomplete.
func BuildTherapistPrompt(patient *db_models.User, issue string) string {
	if !patient.HasCompleteProfile() {
		return "I need advice on how to help a patient struggling with an addiction."
	}

	playsSport := "they do not play any sport"
	if patient.Sport != "" {
		playsSport = "they enjoy playing sport"
	}

	var b strings.Builder
	b.WriteString("I am a therapist treating a patient with the following profile:\n")
	fmt.Fprintf(&b, "- Age: %d\n", *patient.Age)
	fmt.Fprintf(&b, "- Sex: %s\n", patient.Sex)
	fmt.Fprintf(&b, "- Addiction: %s\n", patient.Addiction)
	fmt.Fprintf(&b, "- Sport: %s\n", playsSport)
	fmt.Fprintf(&b, "- Hobbies: %s\n", strings.Join(patient.Hobbies, ", "))
	if issue != "" {
		fmt.Fprintf(&b, "\nThe issue I am working on with them: %s\n", issue)
	}
	b.WriteString("\nWhat activities can I recommend, given today's weather, to keep them entertained and away from their addiction?")
	return b.String()
}
