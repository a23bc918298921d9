package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carelink/internal/models/db_models"
)

type MessageRepository interface {
	// InsertBatch writes all messages in one transaction; either the
	// whole batch lands or none of it does.
	InsertBatch(ctx context.Context, messages []*db_models.Message) error
	ListByOwner(ctx context.Context, ownerAccountID uuid.UUID) ([]db_models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) InsertBatch(ctx context.Context, messages []*db_models.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, message := range messages {
			if err := tx.Create(message).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *messageRepository) ListByOwner(ctx context.Context, ownerAccountID uuid.UUID) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Where("owner_account_id = ?", ownerAccountID).
		Order("posted_on DESC, created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
