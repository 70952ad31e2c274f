package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"lemmequit/internal/models/db_models"
)

type mockUserRepo struct {
	InsertFunc             func(ctx context.Context, user *db_models.User) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*db_models.User, error)
	UpdateFieldsFunc       func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	ListActivePatientsFunc func(ctx context.Context, therapistID uuid.UUID) ([]db_models.User, error)
}

func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	return m.InsertFunc(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}
func (m *mockUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return m.UpdateFieldsFunc(ctx, id, fields)
}
func (m *mockUserRepo) ListActivePatients(ctx context.Context, therapistID uuid.UUID) ([]db_models.User, error) {
	return m.ListActivePatientsFunc(ctx, therapistID)
}

// userStore is a stateful mockUserRepo over a map, applying field maps
// the way a merge update would. Tests that exercise multi-step flows
// use it instead of wiring every Func by hand.
type userStore struct {
	users map[uuid.UUID]*db_models.User
}

func newUserStore(users ...*db_models.User) *userStore {
	s := &userStore{users: map[uuid.UUID]*db_models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *userStore) repo() *mockUserRepo {
	return &mockUserRepo{
		InsertFunc: func(_ context.Context, user *db_models.User) error {
			if user.ID == uuid.Nil {
				user.ID = uuid.New()
			}
			s.users[user.ID] = user
			return nil
		},
		FindByIDFunc: func(_ context.Context, id uuid.UUID) (*db_models.User, error) {
			return s.users[id], nil
		},
		FindByEmailFunc: func(_ context.Context, email string) (*db_models.User, error) {
			for _, u := range s.users {
				if u.Email == email {
					return u, nil
				}
			}
			return nil, nil
		},
		UpdateFieldsFunc: func(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
			u, ok := s.users[id]
			if !ok {
				return nil
			}
			applyUserFields(u, fields)
			return nil
		},
		ListActivePatientsFunc: func(_ context.Context, therapistID uuid.UUID) ([]db_models.User, error) {
			var out []db_models.User
			for _, u := range s.users {
				if u.Role == db_models.RolePatient &&
					u.TherapistID != nil && *u.TherapistID == therapistID &&
					u.RelationshipStatus != nil && *u.RelationshipStatus == db_models.RelationshipActive {
					out = append(out, *u)
				}
			}
			return out, nil
		},
	}
}

func applyUserFields(u *db_models.User, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "name":
			u.Name = value.(string)
		case "sex":
			u.Sex = value.(string)
		case "age":
			age := value.(int)
			u.Age = &age
		case "sport":
			u.Sport = value.(string)
		case "addiction":
			u.Addiction = value.(string)
		case "hobbies":
			u.Hobbies = value.(pq.StringArray)
		case "password_hash":
			u.PasswordHash = value.(string)
		case "therapist_id":
			if value == nil {
				u.TherapistID = nil
			} else {
				id := value.(uuid.UUID)
				u.TherapistID = &id
			}
		case "relationship_status":
			if value == nil {
				u.RelationshipStatus = nil
			} else {
				status := value.(string)
				u.RelationshipStatus = &status
			}
		case "patient_ids":
			u.PatientIDs = value.(pq.StringArray)
		case "active_patient_id":
			if value == nil {
				u.ActivePatientID = nil
			} else {
				id := value.(uuid.UUID)
				u.ActivePatientID = &id
			}
		}
	}
}

type mockNoteRepo struct {
	InsertFunc                 func(ctx context.Context, note *db_models.Note) error
	UpdateFieldsFunc           func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	ListForUserFunc            func(ctx context.Context, userID uuid.UUID) ([]db_models.Note, error)
	ListForPatientFunc         func(ctx context.Context, patientID uuid.UUID) ([]db_models.Note, error)
	ListButtonPressInRangeFunc func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Note, error)
}

func (m *mockNoteRepo) Insert(ctx context.Context, note *db_models.Note) error {
	return m.InsertFunc(ctx, note)
}
func (m *mockNoteRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return m.UpdateFieldsFunc(ctx, id, fields)
}
func (m *mockNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
func (m *mockNoteRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Note, error) {
	return m.ListForUserFunc(ctx, userID)
}
func (m *mockNoteRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]db_models.Note, error) {
	return m.ListForPatientFunc(ctx, patientID)
}
func (m *mockNoteRepo) ListButtonPressInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Note, error) {
	return m.ListButtonPressInRangeFunc(ctx, userID, start, end)
}

type mockAppointmentRepo struct {
	InsertFunc             func(ctx context.Context, appointment *db_models.Appointment) error
	UpdateFieldsFunc       func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*db_models.Appointment, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	ListForUserFunc        func(ctx context.Context, userID uuid.UUID) ([]db_models.Appointment, error)
	ListForUserInRangeFunc func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error)
}

func (m *mockAppointmentRepo) Insert(ctx context.Context, appointment *db_models.Appointment) error {
	return m.InsertFunc(ctx, appointment)
}
func (m *mockAppointmentRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return m.UpdateFieldsFunc(ctx, id, fields)
}
func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Appointment, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
func (m *mockAppointmentRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Appointment, error) {
	return m.ListForUserFunc(ctx, userID)
}
func (m *mockAppointmentRepo) ListForUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error) {
	return m.ListForUserInRangeFunc(ctx, userID, start, end)
}

// appointmentStore keeps appointments in a slice so mirror flows can be
// tested end to end through ordinary repo calls.
type appointmentStore struct {
	appointments []*db_models.Appointment
}

func (s *appointmentStore) repo() *mockAppointmentRepo {
	return &mockAppointmentRepo{
		InsertFunc: func(_ context.Context, appointment *db_models.Appointment) error {
			if appointment.ID == uuid.Nil {
				appointment.ID = uuid.New()
			}
			s.appointments = append(s.appointments, appointment)
			return nil
		},
		UpdateFieldsFunc: func(_ context.Context, _ uuid.UUID, _ map[string]interface{}) error {
			return nil
		},
		FindByIDFunc: func(_ context.Context, id uuid.UUID) (*db_models.Appointment, error) {
			for _, a := range s.appointments {
				if a.ID == id {
					return a, nil
				}
			}
			return nil, nil
		},
		DeleteFunc: func(_ context.Context, id uuid.UUID) error {
			for i, a := range s.appointments {
				if a.ID == id {
					s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
					return nil
				}
			}
			return nil
		},
		ListForUserFunc: func(_ context.Context, userID uuid.UUID) ([]db_models.Appointment, error) {
			var out []db_models.Appointment
			for _, a := range s.appointments {
				if a.UserID == userID {
					out = append(out, *a)
				}
			}
			return out, nil
		},
		ListForUserInRangeFunc: func(_ context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error) {
			var out []db_models.Appointment
			for _, a := range s.appointments {
				if a.UserID == userID && !a.Date.Before(start) && !a.Date.After(end) {
					out = append(out, *a)
				}
			}
			return out, nil
		},
	}
}

type mockAdviceLogRepo struct {
	InsertFunc      func(ctx context.Context, entry *db_models.AdviceLog) error
	ListForUserFunc func(ctx context.Context, userID uuid.UUID) ([]db_models.AdviceLog, error)
}

func (m *mockAdviceLogRepo) Insert(ctx context.Context, entry *db_models.AdviceLog) error {
	return m.InsertFunc(ctx, entry)
}
func (m *mockAdviceLogRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.AdviceLog, error) {
	return m.ListForUserFunc(ctx, userID)
}

type mockAdviceProvider struct {
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error)
}

func (m *mockAdviceProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	return m.CompleteFunc(ctx, systemPrompt, userPrompt, maxTokens, temperature)
}

type mockMailService struct {
	SendPasswordResetMailFunc func(to, token string) error
}

func (m *mockMailService) SendPasswordResetMail(to, token string) error {
	return m.SendPasswordResetMailFunc(to, token)
}
