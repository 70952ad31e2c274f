package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/repositories"
	"lemmequit/pkg/utils"
)

// CalendarServiceInterface is the read layer behind calendar and search
// views: pure transforms over snapshots fetched from the record store,
// plus a concurrent fan-out over a therapist's patients.
type CalendarServiceInterface interface {
	GroupAppointmentsByDay(appointments []db_models.Appointment) []DayBucket
	SearchNotes(notes []db_models.Note, query string) []db_models.Note
	FilterNotesByPatient(notes []db_models.Note, patientID uuid.UUID) []db_models.Note
	CollectPatientNotes(ctx context.Context, therapistID uuid.UUID) ([]PatientNotesResult, error)
}

type DayBucket struct {
	Day          string
	Appointments []db_models.Appointment
}

// PatientNotesResult is one patient's slice of a fan-out fetch. Err is
// per patient: one patient's failure never hides the others' results.
type PatientNotesResult struct {
	Patient db_models.User
	Notes   []db_models.Note
	Err     error
}

type CalendarService struct {
	userRepo repositories.UserRepository
	noteRepo repositories.NoteRepository
}

func NewCalendarService(userRepo repositories.UserRepository, noteRepo repositories.NoteRepository) CalendarServiceInterface {
	return &CalendarService{
		userRepo: userRepo,
		noteRepo: noteRepo,
	}
}

func (s *CalendarService) GroupAppointmentsByDay(appointments []db_models.Appointment) []DayBucket {
	grouped := map[string][]db_models.Appointment{}
	for _, appointment := range appointments {
		key := utils.DayKey(appointment.Date)
		grouped[key] = append(grouped[key], appointment)
	}

	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Strings(days)

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, DayBucket{Day: day, Appointments: grouped[day]})
	}
	return buckets
}

// SearchNotes does a case-insensitive substring match over title and
// content. An empty query returns everything.
func (s *CalendarService) SearchNotes(notes []db_models.Note, query string) []db_models.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}

	var matched []db_models.Note
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			matched = append(matched, note)
		}
	}
	return matched
}

func (s *CalendarService) FilterNotesByPatient(notes []db_models.Note, patientID uuid.UUID) []db_models.Note {
	var filtered []db_models.Note
	for _, note := range notes {
		if note.PatientID != nil && *note.PatientID == patientID {
			filtered = append(filtered, note)
		}
	}
	return filtered
}

// CollectPatientNotes fetches every linked patient's notes
// concurrently. Each fetch is independent: siblings are never cancelled
// because one failed, and failures travel per patient in the result.
func (s *CalendarService) CollectPatientNotes(ctx context.Context, therapistID uuid.UUID) ([]PatientNotesResult, error) {
	patients, err := s.userRepo.ListActivePatients(ctx, therapistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]PatientNotesResult, len(patients))
	var wg sync.WaitGroup
	for i, patient := range patients {
		wg.Add(1)
		go func(i int, patient db_models.User) {
			defer wg.Done()
			notes, err := s.noteRepo.ListForUser(ctx, patient.ID)
			results[i] = PatientNotesResult{Patient: patient, Notes: notes, Err: err}
		}(i, patient)
	}
	wg.Wait()

	return results, nil
}
