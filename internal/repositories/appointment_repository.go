package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lemmequit/internal/models/db_models"
)

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *db_models.Appointment) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Appointment, error)

	// Delete is a no-op when id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForUser returns userID's appointments, soonest first. Note the
	// asymmetry with notes (which list most recent first); calendar views
	// depend on it.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Appointment, error)

	// ListForUserInRange returns appointments dated within [start, end],
	// both bounds inclusive.
	ListForUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Insert(ctx context.Context, appointment *db_models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Appointment{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Appointment, error) {
	var appointment db_models.Appointment
	err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Appointment, error) {
	var appointments []db_models.Appointment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) ListForUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error) {
	var appointments []db_models.Appointment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&appointments).Error
	return appointments, err
}
