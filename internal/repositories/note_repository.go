package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lemmequit/internal/models/db_models"
)

type NoteRepository interface {
	Insert(ctx context.Context, note *db_models.Note) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Delete is a no-op when id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForUser returns userID's own notes, most recent first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Note, error)

	// ListForPatient returns notes cross-referencing patientID, most
	// recent first (the therapist's view of a patient's record).
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]db_models.Note, error)

	// ListButtonPressInRange returns craving-episode notes dated within
	// [start, end], both bounds inclusive.
	ListButtonPressInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Insert(ctx context.Context, note *db_models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Note{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Note{}, "id = ?", id).Error
}

func (r *noteRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Note, error) {
	var notes []db_models.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]db_models.Note, error) {
	var notes []db_models.Note
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) ListButtonPressInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Note, error) {
	var notes []db_models.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_button_press = ? AND date >= ? AND date <= ?",
			userID, true, start, end).
		Find(&notes).Error
	return notes, err
}
