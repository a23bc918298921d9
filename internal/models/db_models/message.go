package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created. PostedOn is day-granular, matching
// the stored format of earlier deployments.
type Message struct {
	BaseModel
	OwnerAccountID uuid.UUID `gorm:"type:uuid;index"`
	SenderName     string
	Content        string
	PostedOn       time.Time `gorm:"index"`
}
