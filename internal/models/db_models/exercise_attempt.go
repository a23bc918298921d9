package db_models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseAttempt is recorded when the user exits an exercise,
// regardless of completion.
type ExerciseAttempt struct {
	BaseModel
	AccountID       uuid.UUID `gorm:"type:uuid;index"`
	Exercise        string
	Accuracy        float64
	AvgReactionTime float64 // milliseconds
	AttemptedAt     time.Time `gorm:"index"`
}
