package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carelink/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, lastLogin int64) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, lastLogin int64) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("last_login", lastLogin).Error
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// DeleteCascade removes the account and everything it owns in one
// transaction: links on either side, codes, messages, upload metadata,
// the media counter, exercise attempts, and journal entries.
func (a *accountRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&db_models.Link{}, "primary_account_id = ? OR support_account_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.OtpCode{}, "primary_account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Message{}, "owner_account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Upload{}, "owner_account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.MediaCounter{}, "owner_account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.ExerciseAttempt{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.JournalEntry{}, "account_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db_models.Account{}, "id = ?", id).Error
	})
}
