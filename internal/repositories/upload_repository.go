package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carelink/internal/models/db_models"
)

// SimilarUploadRow is an upload joined with its cosine similarity to a
// query vector.
type SimilarUploadRow struct {
	db_models.Upload
	Similarity float64
}

type UploadRepository interface {
	// InsertNextIndex allocates the owner's next media index and stores
	// the metadata inside one transaction. The counter row is locked for
	// the duration, so concurrent uploads for the same owner serialize
	// and indices stay gapless.
	InsertNextIndex(ctx context.Context, upload *db_models.Upload) error
	// UpdateAnalysis stores an analysis result. A nil embedding leaves the
	// embedding column untouched.
	UpdateAnalysis(ctx context.Context, id uuid.UUID, status, scene, quickAccess string, labels pq.StringArray, embedding *pgvector.Vector) error
	ListByOwner(ctx context.Context, ownerAccountID uuid.UUID) ([]db_models.Upload, error)
	FindByIndex(ctx context.Context, ownerAccountID uuid.UUID, mediaIndex int64) (*db_models.Upload, error)
	CounterFor(ctx context.Context, ownerAccountID uuid.UUID) (int64, error)
	FindSimilar(ctx context.Context, ownerAccountID uuid.UUID, vector pgvector.Vector, limit int) ([]SimilarUploadRow, error)
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{
		db: db,
	}
}

func (r *uploadRepository) InsertNextIndex(ctx context.Context, upload *db_models.Upload) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter db_models.MediaCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, "owner_account_id = ?", upload.OwnerAccountID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = db_models.MediaCounter{OwnerAccountID: upload.OwnerAccountID, NextIndex: 0}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		upload.MediaIndex = counter.NextIndex

		err = tx.Model(&db_models.MediaCounter{}).
			Where("owner_account_id = ?", upload.OwnerAccountID).
			Update("next_index", counter.NextIndex+1).Error
		if err != nil {
			return err
		}

		return tx.Create(upload).Error
	})
}

func (r *uploadRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, status, scene, quickAccess string, labels pq.StringArray, embedding *pgvector.Vector) error {
	updates := map[string]interface{}{
		"analysis_status": status,
		"scene":           scene,
		"quick_access":    quickAccess,
		"labels":          labels,
	}
	if embedding != nil {
		updates["embedding"] = *embedding
	}

	return r.db.WithContext(ctx).
		Model(&db_models.Upload{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *uploadRepository) ListByOwner(ctx context.Context, ownerAccountID uuid.UUID) ([]db_models.Upload, error) {
	var uploads []db_models.Upload
	err := r.db.WithContext(ctx).
		Where("owner_account_id = ?", ownerAccountID).
		Order("created_at DESC").
		Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *uploadRepository) FindByIndex(ctx context.Context, ownerAccountID uuid.UUID, mediaIndex int64) (*db_models.Upload, error) {
	var upload db_models.Upload
	err := r.db.WithContext(ctx).
		First(&upload, "owner_account_id = ? AND media_index = ?", ownerAccountID, mediaIndex).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &upload, nil
}

func (r *uploadRepository) CounterFor(ctx context.Context, ownerAccountID uuid.UUID) (int64, error) {
	var counter db_models.MediaCounter
	err := r.db.WithContext(ctx).First(&counter, "owner_account_id = ?", ownerAccountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return counter.NextIndex, nil
}

func (r *uploadRepository) FindSimilar(ctx context.Context, ownerAccountID uuid.UUID, vector pgvector.Vector, limit int) ([]SimilarUploadRow, error) {
	var results []SimilarUploadRow

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM uploads
        WHERE owner_account_id = $2
          AND embedding IS NOT NULL
          AND deleted_at IS NULL
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), ownerAccountID, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
