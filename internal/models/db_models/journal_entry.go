package db_models

import "github.com/google/uuid"

type JournalEntry struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	Content   string
	Mood      string
}
