package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carelink/internal/models/db_models"
)

type ExerciseRepository interface {
	Insert(ctx context.Context, attempt *db_models.ExerciseAttempt) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ExerciseAttempt, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{
		db: db,
	}
}

func (r *exerciseRepository) Insert(ctx context.Context, attempt *db_models.ExerciseAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *exerciseRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ExerciseAttempt, error) {
	var attempts []db_models.ExerciseAttempt
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("attempted_at ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
