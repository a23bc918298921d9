package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carelink/internal/models/db_models"
	"carelink/pkg/utils"
)

type LinkRepository interface {
	// UpsertCode replaces any live code for the primary account so at
	// most one code is outstanding at a time.
	UpsertCode(ctx context.Context, primaryAccountID uuid.UUID, code string, expiresAt time.Time) error
	FindCodeByValue(ctx context.Context, code string) (*db_models.OtpCode, error)
	// ConsumeCode atomically re-checks the code under a row lock, verifies
	// the pair is not yet linked, creates the link, and deletes the code.
	// Exactly one of two racing callers wins; the loser gets
	// utils.ErrCodeConsumed or utils.ErrAlreadyLinked.
	ConsumeCode(ctx context.Context, codeID uuid.UUID, primaryAccountID, supportAccountID uuid.UUID) error
	LinkExists(ctx context.Context, primaryAccountID, supportAccountID uuid.UUID) (bool, error)
	LinksFor(ctx context.Context, accountID uuid.UUID) ([]db_models.Link, error)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{
		db: db,
	}
}

func (r *linkRepository) UpsertCode(ctx context.Context, primaryAccountID uuid.UUID, code string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&db_models.OtpCode{}, "primary_account_id = ?", primaryAccountID).Error; err != nil {
			return err
		}
		return tx.Create(&db_models.OtpCode{
			PrimaryAccountID: primaryAccountID,
			Code:             code,
			ExpiresAt:        expiresAt,
		}).Error
	})
}

func (r *linkRepository) FindCodeByValue(ctx context.Context, code string) (*db_models.OtpCode, error) {
	var stored db_models.OtpCode
	err := r.db.WithContext(ctx).First(&stored, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stored, nil
}

func (r *linkRepository) ConsumeCode(ctx context.Context, codeID uuid.UUID, primaryAccountID, supportAccountID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var code db_models.OtpCode
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&code, "id = ?", codeID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrCodeConsumed
			}
			return err
		}

		var count int64
		err = tx.Model(&db_models.Link{}).
			Where("primary_account_id = ? AND support_account_id = ?", primaryAccountID, supportAccountID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return utils.ErrAlreadyLinked
		}

		if err := tx.Create(&db_models.Link{
			PrimaryAccountID: primaryAccountID,
			SupportAccountID: supportAccountID,
		}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&db_models.OtpCode{}, "id = ?", code.ID).Error
	})
}

func (r *linkRepository) LinkExists(ctx context.Context, primaryAccountID, supportAccountID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Link{}).
		Where("primary_account_id = ? AND support_account_id = ?", primaryAccountID, supportAccountID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *linkRepository) LinksFor(ctx context.Context, accountID uuid.UUID) ([]db_models.Link, error) {
	var links []db_models.Link
	err := r.db.WithContext(ctx).
		Where("primary_account_id = ? OR support_account_id = ?", accountID, accountID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
