package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/models/request_models"
	"lemmequit/internal/repositories"
	"lemmequit/pkg/utils"
)

// RecordServiceInterface owns notes and appointments. Appointment
// mirroring is NOT part of SaveAppointment: the shared therapy session
// is booked through BookTherapySession, which issues the two writes, and
// cleaned up through DeleteAppointmentWithMirror. The pair lives in two
// independently addressed rows with no shared key, so both sides of
// that contract are best effort, not transactional.
type RecordServiceInterface interface {
	SaveNote(ctx context.Context, userID uuid.UUID, request request_models.SaveNoteRequest) (uuid.UUID, error)
	LogCravingEpisode(ctx context.Context, patientID uuid.UUID) (uuid.UUID, error)
	SaveVoiceNote(ctx context.Context, therapistID uuid.UUID, request request_models.SaveVoiceNoteRequest) (uuid.UUID, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
	ListNotesForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Note, error)
	ListNotesForPatient(ctx context.Context, patientID uuid.UUID) ([]db_models.Note, error)
	ListButtonPressNotesInRange(ctx context.Context, userID uuid.UUID, day time.Time) ([]db_models.Note, error)

	SaveAppointment(ctx context.Context, userID uuid.UUID, request request_models.SaveAppointmentRequest) (uuid.UUID, error)
	BookTherapySession(ctx context.Context, therapist *db_models.User, request request_models.BookSessionRequest) (therapistApptID, patientApptID uuid.UUID, err error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	DeleteAppointmentWithMirror(ctx context.Context, id uuid.UUID) error
	ReconcileMirrors(ctx context.Context, userID uuid.UUID) (recreated int, err error)
	ListAppointmentsForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Appointment, error)
	ListAppointmentsInRange(ctx context.Context, userID uuid.UUID, day time.Time) ([]db_models.Appointment, error)
}

type RecordService struct {
	noteRepo        repositories.NoteRepository
	appointmentRepo repositories.AppointmentRepository
	logger          *zap.Logger
}

func NewRecordService(
	noteRepo repositories.NoteRepository,
	appointmentRepo repositories.AppointmentRepository,
	logger *zap.Logger,
) RecordServiceInterface {
	return &RecordService{
		noteRepo:        noteRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// SaveNote inserts when the request carries no id, otherwise
// merge-updates: only fields present in the request are written.
func (s *RecordService) SaveNote(ctx context.Context, userID uuid.UUID, request request_models.SaveNoteRequest) (uuid.UUID, error) {
	if request.ID == "" {
		note := &db_models.Note{
			Date:     time.Now(),
			UserID:   userID,
			NoteType: db_models.NoteTypeGeneral,
		}
		if request.Title != nil {
			note.Title = *request.Title
		}
		if request.Content != nil {
			note.Content = *request.Content
		}
		if request.Date != nil {
			note.Date = *request.Date
		}
		if request.NoteType != nil {
			note.NoteType = *request.NoteType
		}
		if request.PatientID != nil {
			id := uuid.MustParse(*request.PatientID)
			note.PatientID = &id
		}
		if request.TherapistID != nil {
			id := uuid.MustParse(*request.TherapistID)
			note.TherapistID = &id
		}
		note.VoiceURL = request.VoiceURL

		if err := s.noteRepo.Insert(ctx, note); err != nil {
			return uuid.Nil, utils.ErrDatabaseError
		}
		return note.ID, nil
	}

	id := uuid.MustParse(request.ID)
	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.Content != nil {
		fields["content"] = *request.Content
	}
	if request.Date != nil {
		fields["date"] = *request.Date
	}
	if request.NoteType != nil {
		fields["note_type"] = *request.NoteType
	}
	if request.PatientID != nil {
		fields["patient_id"] = *request.PatientID
	}
	if request.TherapistID != nil {
		fields["therapist_id"] = *request.TherapistID
	}
	if request.VoiceURL != nil {
		fields["voice_url"] = *request.VoiceURL
	}

	if err := s.noteRepo.UpdateFields(ctx, id, fields); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

// LogCravingEpisode records the one-tap craving event through the fixed
// factory. Callers cannot influence its content.
func (s *RecordService) LogCravingEpisode(ctx context.Context, patientID uuid.UUID) (uuid.UUID, error) {
	note := db_models.NewButtonPressNote(patientID)
	if err := s.noteRepo.Insert(ctx, note); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return note.ID, nil
}

func (s *RecordService) SaveVoiceNote(ctx context.Context, therapistID uuid.UUID, request request_models.SaveVoiceNoteRequest) (uuid.UUID, error) {
	patientID := uuid.MustParse(request.PatientID)
	note := db_models.NewVoiceNote(request.Title, request.Transcription, therapistID, patientID, request.VoiceURL)
	if err := s.noteRepo.Insert(ctx, note); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return note.ID, nil
}

func (s *RecordService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RecordService) ListNotesForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Note, error) {
	notes, err := s.noteRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notes, nil
}

func (s *RecordService) ListNotesForPatient(ctx context.Context, patientID uuid.UUID) ([]db_models.Note, error) {
	notes, err := s.noteRepo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notes, nil
}

func (s *RecordService) ListButtonPressNotesInRange(ctx context.Context, userID uuid.UUID, day time.Time) ([]db_models.Note, error) {
	start, end := utils.DayBounds(day)
	notes, err := s.noteRepo.ListButtonPressInRange(ctx, userID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notes, nil
}

func (s *RecordService) SaveAppointment(ctx context.Context, userID uuid.UUID, request request_models.SaveAppointmentRequest) (uuid.UUID, error) {
	if request.ID == "" {
		appointment := &db_models.Appointment{
			Date:   time.Now(),
			UserID: userID,
			Type:   db_models.AppointmentTypeTherapy,
		}
		if request.Title != nil {
			appointment.Title = *request.Title
		}
		if request.Date != nil {
			appointment.Date = *request.Date
		}
		if request.Type != nil {
			appointment.Type = *request.Type
		}
		if request.RelatedUserID != nil {
			id := uuid.MustParse(*request.RelatedUserID)
			appointment.RelatedUserID = &id
		}
		appointment.Notes = request.Notes
		if request.IsCompleted != nil {
			appointment.IsCompleted = *request.IsCompleted
		}
		if request.ReminderSet != nil {
			appointment.ReminderSet = *request.ReminderSet
		}

		if err := s.appointmentRepo.Insert(ctx, appointment); err != nil {
			return uuid.Nil, utils.ErrDatabaseError
		}
		return appointment.ID, nil
	}

	id := uuid.MustParse(request.ID)
	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.Date != nil {
		fields["date"] = *request.Date
	}
	if request.Type != nil {
		fields["type"] = *request.Type
	}
	if request.RelatedUserID != nil {
		fields["related_user_id"] = *request.RelatedUserID
	}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}
	if request.IsCompleted != nil {
		fields["is_completed"] = *request.IsCompleted
	}
	if request.ReminderSet != nil {
		fields["reminder_set"] = *request.ReminderSet
	}

	if err := s.appointmentRepo.UpdateFields(ctx, id, fields); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

// BookTherapySession creates the shared session as two records with
// independent ids: the therapist's own, then the patient's mirror. If
// the second insert fails the first is left in place; ReconcileMirrors
// is the compensation path.
func (s *RecordService) BookTherapySession(ctx context.Context, therapist *db_models.User, request request_models.BookSessionRequest) (uuid.UUID, uuid.UUID, error) {
	patientID := uuid.MustParse(request.PatientID)

	notes := request.Notes
	therapistAppt := &db_models.Appointment{
		Title:         request.Title,
		Date:          request.Date,
		UserID:        therapist.ID,
		RelatedUserID: &patientID,
		Type:          db_models.AppointmentTypeTherapy,
	}
	if notes != "" {
		therapistAppt.Notes = &notes
	}
	if err := s.appointmentRepo.Insert(ctx, therapistAppt); err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrDatabaseError
	}

	mirrorTitle := "Session with " + therapist.Name
	patientAppt := &db_models.Appointment{
		Title:         mirrorTitle,
		Date:          request.Date,
		UserID:        patientID,
		RelatedUserID: &therapist.ID,
		Notes:         &request.Title,
		Type:          db_models.AppointmentTypeTherapy,
	}
	if err := s.appointmentRepo.Insert(ctx, patientAppt); err != nil {
		s.logger.Warn("booked session is missing its mirror",
			zap.String("appointment_id", therapistAppt.ID.String()),
			zap.String("patient_id", patientID.String()),
			zap.Error(err))
		return uuid.Nil, uuid.Nil, utils.ErrDatabaseError
	}

	return therapistAppt.ID, patientAppt.ID, nil
}

func (s *RecordService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// DeleteAppointmentWithMirror deletes the appointment and then hunts
// for its mirror: the counterpart user's appointment on the same
// calendar day whose related user is this appointment's owner. A mirror
// that cannot be found is logged and swallowed; the primary deletion has
// already succeeded and there is no transaction to unwind.
func (s *RecordService) DeleteAppointmentWithMirror(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if appointment == nil {
		return utils.ErrAppointmentNotFound
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	if appointment.RelatedUserID == nil {
		return nil
	}

	start, end := utils.DayBounds(appointment.Date)
	candidates, err := s.appointmentRepo.ListForUserInRange(ctx, *appointment.RelatedUserID, start, end)
	if err != nil {
		s.logger.Warn("mirror lookup failed after appointment delete",
			zap.String("appointment_id", id.String()),
			zap.Error(err))
		return nil
	}

	for _, candidate := range candidates {
		if candidate.IsMirrorOf(appointment) {
			if err := s.appointmentRepo.Delete(ctx, candidate.ID); err != nil {
				s.logger.Warn("mirror delete failed",
					zap.String("appointment_id", id.String()),
					zap.String("mirror_id", candidate.ID.String()),
					zap.Error(err))
			}
			return nil
		}
	}

	s.logger.Warn("no mirror found for deleted appointment",
		zap.String("appointment_id", id.String()),
		zap.String("related_user_id", appointment.RelatedUserID.String()))
	return nil
}

// ReconcileMirrors sweeps the user's therapy appointments and recreates
// any missing counterpart records. This is the compensation for the
// non-atomic two-write booking: a crash between the writes, or a partial
// mirror delete, leaves one-sided pairs this sweep repairs.
func (s *RecordService) ReconcileMirrors(ctx context.Context, userID uuid.UUID) (int, error) {
	appointments, err := s.appointmentRepo.ListForUser(ctx, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	recreated := 0
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.Type != db_models.AppointmentTypeTherapy || appointment.RelatedUserID == nil {
			continue
		}

		start, end := utils.DayBounds(appointment.Date)
		candidates, err := s.appointmentRepo.ListForUserInRange(ctx, *appointment.RelatedUserID, start, end)
		if err != nil {
			// One failed lookup does not stop the sweep.
			s.logger.Warn("reconcile lookup failed",
				zap.String("appointment_id", appointment.ID.String()),
				zap.Error(err))
			continue
		}

		found := false
		for _, candidate := range candidates {
			if candidate.IsMirrorOf(appointment) {
				found = true
				break
			}
		}
		if found {
			continue
		}

		mirror := &db_models.Appointment{
			Title:         appointment.Title,
			Date:          appointment.Date,
			UserID:        *appointment.RelatedUserID,
			RelatedUserID: &appointment.UserID,
			Notes:         appointment.Notes,
			Type:          db_models.AppointmentTypeTherapy,
		}
		if err := s.appointmentRepo.Insert(ctx, mirror); err != nil {
			s.logger.Warn("reconcile insert failed",
				zap.String("appointment_id", appointment.ID.String()),
				zap.Error(err))
			continue
		}
		recreated++
	}

	return recreated, nil
}

func (s *RecordService) ListAppointmentsForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Appointment, error) {
	appointments, err := s.appointmentRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return appointments, nil
}

func (s *RecordService) ListAppointmentsInRange(ctx context.Context, userID uuid.UUID, day time.Time) ([]db_models.Appointment, error) {
	start, end := utils.DayBounds(day)
	appointments, err := s.appointmentRepo.ListForUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return appointments, nil
}
