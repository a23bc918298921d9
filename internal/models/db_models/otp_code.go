package db_models

import (
	"time"

	"github.com/google/uuid"
)

// OtpCode is the single live linking code for a primary account.
// Regenerating overwrites the previous unconsumed code; a successful
// validation deletes the row.
type OtpCode struct {
	BaseModel
	PrimaryAccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Code             string    `gorm:"index"`
	ExpiresAt        time.Time
}
