package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lemmequit/internal/models/db_models"
)

type AdviceLogRepository interface {
	Insert(ctx context.Context, entry *db_models.AdviceLog) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.AdviceLog, error)
}

type adviceLogRepository struct {
	db *gorm.DB
}

func NewAdviceLogRepository(db *gorm.DB) AdviceLogRepository {
	return &adviceLogRepository{db: db}
}

func (r *adviceLogRepository) Insert(ctx context.Context, entry *db_models.AdviceLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *adviceLogRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.AdviceLog, error) {
	var entries []db_models.AdviceLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
