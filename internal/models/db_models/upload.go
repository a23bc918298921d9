package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const (
	AnalysisStatusSkipped = "skipped"
	AnalysisStatusPending = "pending"
	AnalysisStatusDone    = "done"
	AnalysisStatusError   = "error"
)

type Upload struct {
	BaseModel
	OwnerAccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_owner_media_index"`
	// MediaIndex is assigned sequentially per owner inside the counter
	// transaction; no gaps, no duplicates.
	MediaIndex        int64     `gorm:"uniqueIndex:idx_owner_media_index"`
	StoragePath       string
	OriginalName      string
	MediaType         string
	Description       string
	CapturedOn        string
	UploaderAccountID uuid.UUID `gorm:"type:uuid;index"`
	UploaderName      string

	AnalysisStatus string
	Scene          string
	Labels         pq.StringArray  `gorm:"type:text[]"`
	QuickAccess    string
	Embedding      pgvector.Vector `gorm:"type:vector(1536)"`
}

// MediaCounter holds the next media index per owner. Read and incremented
// only inside the upload transaction, under a row lock.
type MediaCounter struct {
	OwnerAccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	NextIndex      int64
}
