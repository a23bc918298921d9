package db_models

import "github.com/google/uuid"

// Link pairs a primary account with a support account. At most one link
// per pair; created only through a valid OTP exchange, never updated.
type Link struct {
	BaseModel
	PrimaryAccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_link_pair"`
	SupportAccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_link_pair"`
}
