package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lemmequit/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)

	// UpdateFields performs a merge-style partial update: only the keys
	// present in fields are written, everything else is preserved.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// ListActivePatients returns the patients linked to therapistID with
	// an active relationship. No ordering is guaranteed.
	ListActivePatients(ctx context.Context, therapistID uuid.UUID) ([]db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *userRepository) ListActivePatients(ctx context.Context, therapistID uuid.UUID) ([]db_models.User, error) {
	var patients []db_models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND therapist_id = ? AND relationship_status = ?",
			db_models.RolePatient, therapistID, db_models.RelationshipActive).
		Find(&patients).Error
	return patients, err
}
