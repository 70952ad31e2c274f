package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"lemmequit/internal/models/db_models"
	"lemmequit/internal/repositories"
	"lemmequit/pkg/utils"
)

// RelationshipServiceInterface owns the therapist↔patient link state
// machine: unlinked → pending → active, with unlinked → active directly
// via AssignDirect, and back to unlinked via Unlink. The "rejected"
// status is declared on the model but no operation here produces it.
type RelationshipServiceInterface interface {
	ProposeLink(ctx context.Context, therapistID, patientID uuid.UUID) error
	AcceptLink(ctx context.Context, patientID uuid.UUID) error
	AssignDirect(ctx context.Context, therapistID, patientID uuid.UUID) error
	AddPatientByEmail(ctx context.Context, therapistID uuid.UUID, email string) (*db_models.User, error)
	Unlink(ctx context.Context, therapistID, patientID uuid.UUID) error
	SetActivePatient(ctx context.Context, therapistID uuid.UUID, patientID *uuid.UUID) error
	GetActivePatient(ctx context.Context, therapistID uuid.UUID) (*db_models.User, error)
	ListPatients(ctx context.Context, therapistID uuid.UUID) ([]db_models.User, error)
}

type RelationshipService struct {
	userRepo repositories.UserRepository
}

func NewRelationshipService(userRepo repositories.UserRepository) RelationshipServiceInterface {
	return &RelationshipService{userRepo: userRepo}
}

// loadPair resolves both sides of a link and checks their roles.
func (s *RelationshipService) loadPair(ctx context.Context, therapistID, patientID uuid.UUID) (therapist, patient *db_models.User, err error) {
	therapist, err = s.userRepo.FindByID(ctx, therapistID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if therapist == nil {
		return nil, nil, utils.ErrUserNotFound
	}
	if !therapist.IsTherapist() {
		return nil, nil, utils.ErrNotATherapist
	}

	patient, err = s.userRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if patient == nil {
		return nil, nil, utils.ErrUserNotFound
	}
	if !patient.IsPatient() {
		return nil, nil, utils.ErrNotAPatient
	}

	return therapist, patient, nil
}

func (s *RelationshipService) link(ctx context.Context, therapist, patient *db_models.User, status string) error {
	if err := s.userRepo.UpdateFields(ctx, patient.ID, map[string]interface{}{
		"therapist_id":        therapist.ID,
		"relationship_status": status,
	}); err != nil {
		return utils.ErrDatabaseError
	}

	// Idempotent set add: a patient already on the list is not added twice.
	if therapist.HasPatient(patient.ID) {
		return nil
	}
	ids := append(pq.StringArray{}, therapist.PatientIDs...)
	ids = append(ids, patient.ID.String())
	if err := s.userRepo.UpdateFields(ctx, therapist.ID, map[string]interface{}{
		"patient_ids": ids,
	}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RelationshipService) ProposeLink(ctx context.Context, therapistID, patientID uuid.UUID) error {
	therapist, patient, err := s.loadPair(ctx, therapistID, patientID)
	if err != nil {
		return err
	}
	return s.link(ctx, therapist, patient, db_models.RelationshipPending)
}

func (s *RelationshipService) AcceptLink(ctx context.Context, patientID uuid.UUID) error {
	patient, err := s.userRepo.FindByID(ctx, patientID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if patient == nil {
		return utils.ErrUserNotFound
	}
	if patient.RelationshipStatus == nil || *patient.RelationshipStatus != db_models.RelationshipPending {
		return utils.ErrNoPendingInvitation
	}

	if err := s.userRepo.UpdateFields(ctx, patientID, map[string]interface{}{
		"relationship_status": db_models.RelationshipActive,
	}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RelationshipService) AssignDirect(ctx context.Context, therapistID, patientID uuid.UUID) error {
	therapist, patient, err := s.loadPair(ctx, therapistID, patientID)
	if err != nil {
		return err
	}
	return s.link(ctx, therapist, patient, db_models.RelationshipActive)
}

// AddPatientByEmail is the therapist "add patient" flow: resolve the
// address, make sure it is a patient not already on the list, then link
// directly with no pending stage.
func (s *RelationshipService) AddPatientByEmail(ctx context.Context, therapistID uuid.UUID, email string) (*db_models.User, error) {
	patient, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if patient == nil {
		return nil, utils.ErrUserNotFound
	}
	if !patient.IsPatient() {
		return nil, utils.ErrNotAPatient
	}

	therapist, err := s.userRepo.FindByID(ctx, therapistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if therapist == nil {
		return nil, utils.ErrUserNotFound
	}
	if !therapist.IsTherapist() {
		return nil, utils.ErrNotATherapist
	}
	if therapist.HasPatient(patient.ID) {
		return nil, utils.ErrPatientAlreadyLinked
	}

	if err := s.link(ctx, therapist, patient, db_models.RelationshipActive); err != nil {
		return nil, err
	}
	return patient, nil
}

// Unlink clears the patient's link fields, removes the patient from the
// therapist's set, and cascades the active-patient clear when needed.
func (s *RelationshipService) Unlink(ctx context.Context, therapistID, patientID uuid.UUID) error {
	therapist, _, err := s.loadPair(ctx, therapistID, patientID)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdateFields(ctx, patientID, map[string]interface{}{
		"therapist_id":        nil,
		"relationship_status": nil,
	}); err != nil {
		return utils.ErrDatabaseError
	}

	ids := pq.StringArray{}
	for _, id := range therapist.PatientIDs {
		if id != patientID.String() {
			ids = append(ids, id)
		}
	}
	fields := map[string]interface{}{"patient_ids": ids}
	if therapist.ActivePatientID != nil && *therapist.ActivePatientID == patientID {
		fields["active_patient_id"] = nil
	}
	if err := s.userRepo.UpdateFields(ctx, therapistID, fields); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SetActivePatient sets or clears the therapist's default patient
// context. A patient not on the therapist's list is refused; setting the
// same patient twice is a no-op success.
func (s *RelationshipService) SetActivePatient(ctx context.Context, therapistID uuid.UUID, patientID *uuid.UUID) error {
	therapist, err := s.userRepo.FindByID(ctx, therapistID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if therapist == nil {
		return utils.ErrUserNotFound
	}
	if !therapist.IsTherapist() {
		return utils.ErrNotATherapist
	}

	fields := map[string]interface{}{}
	if patientID == nil {
		fields["active_patient_id"] = nil
	} else {
		if !therapist.HasPatient(*patientID) {
			return utils.ErrPatientNotLinked
		}
		fields["active_patient_id"] = *patientID
	}

	if err := s.userRepo.UpdateFields(ctx, therapistID, fields); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RelationshipService) GetActivePatient(ctx context.Context, therapistID uuid.UUID) (*db_models.User, error) {
	therapist, err := s.userRepo.FindByID(ctx, therapistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if therapist == nil {
		return nil, utils.ErrUserNotFound
	}
	if therapist.ActivePatientID == nil {
		return nil, nil
	}

	patient, err := s.userRepo.FindByID(ctx, *therapist.ActivePatientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return patient, nil
}

func (s *RelationshipService) ListPatients(ctx context.Context, therapistID uuid.UUID) ([]db_models.User, error) {
	patients, err := s.userRepo.ListActivePatients(ctx, therapistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return patients, nil
}
