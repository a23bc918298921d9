package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carelink/internal/models/db_models"
)

type JournalRepository interface {
	Insert(ctx context.Context, entry *db_models.JournalEntry) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.JournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{
		db: db,
	}
}

func (r *journalRepository) Insert(ctx context.Context, entry *db_models.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.JournalEntry, error) {
	var entries []db_models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
