package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password is not strong enough")
	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrNotLinked          = errors.New("accounts are not linked")
	ErrAlreadyLinked      = errors.New("accounts are already linked")
	ErrCodeConsumed       = errors.New("code already consumed")
	ErrUnknownMediaType   = errors.New("unknown media type")
	ErrNoUnseenMedia      = errors.New("no unseen media left")
	ErrUploadNotFound     = errors.New("upload not found")
	ErrDatabaseError      = errors.New("database error")
	ErrStorageError       = errors.New("object storage error")
	ErrMailError          = errors.New("mail delivery error")
)
