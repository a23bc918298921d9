package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"carelink/internal/models/response_models"
	"carelink/internal/repositories"
	"carelink/pkg/utils"
)

const (
	LinkStatusSuccess       = "success"
	LinkStatusInvalid       = "invalid"
	LinkStatusExpired       = "expired"
	LinkStatusAlreadyLinked = "already_linked"
)

// LinkOutcome is the tagged result of an OTP validation attempt. A
// non-success status is a normal outcome for the caller, not an error.
type LinkOutcome struct {
	Status     string
	LinkedName string
}

type LinkServiceInterface interface {
	// GenerateCode issues a fresh 6-digit code for the primary account,
	// replacing any outstanding one.
	GenerateCode(ctx context.Context, primaryAccountID uuid.UUID) (*response_models.OtpResponse, error)
	ValidateCode(ctx context.Context, supportAccountID uuid.UUID, code string) (*LinkOutcome, error)
	LinkedAccounts(ctx context.Context, accountID uuid.UUID) ([]response_models.LinkedAccount, error)
	IsLinkedPair(ctx context.Context, primaryAccountID, supportAccountID uuid.UUID) (bool, error)
}

type LinkService struct {
	linkRepo    repositories.LinkRepository
	accountRepo repositories.AccountRepository
	otpTTL      time.Duration
}

func NewLinkService(linkRepo repositories.LinkRepository, accountRepo repositories.AccountRepository, otpTTL time.Duration) LinkServiceInterface {
	return &LinkService{
		linkRepo:    linkRepo,
		accountRepo: accountRepo,
		otpTTL:      otpTTL,
	}
}

func (l *LinkService) GenerateCode(ctx context.Context, primaryAccountID uuid.UUID) (*response_models.OtpResponse, error) {

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	expiresAt := time.Now().UTC().Add(l.otpTTL)

	if err := l.linkRepo.UpsertCode(ctx, primaryAccountID, code, expiresAt); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.OtpResponse{
		Otp:       code,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

// ValidateCode resolves a support account's submitted code into one of the
// four outcomes. Expired codes are reported but left in place; the next
// GenerateCode call for that primary replaces them anyway.
func (l *LinkService) ValidateCode(ctx context.Context, supportAccountID uuid.UUID, code string) (*LinkOutcome, error) {

	stored, err := l.linkRepo.FindCodeByValue(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stored == nil {
		return &LinkOutcome{Status: LinkStatusInvalid}, nil
	}

	if time.Now().UTC().After(stored.ExpiresAt) {
		return &LinkOutcome{Status: LinkStatusExpired}, nil
	}

	// A primary cannot link to itself.
	if stored.PrimaryAccountID == supportAccountID {
		return &LinkOutcome{Status: LinkStatusInvalid}, nil
	}

	err = l.linkRepo.ConsumeCode(ctx, stored.ID, stored.PrimaryAccountID, supportAccountID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAlreadyLinked):
			return &LinkOutcome{Status: LinkStatusAlreadyLinked}, nil
		case errors.Is(err, utils.ErrCodeConsumed):
			return &LinkOutcome{Status: LinkStatusInvalid}, nil
		default:
			return nil, utils.ErrDatabaseError
		}
	}

	primary, err := l.accountRepo.FindById(ctx, stored.PrimaryAccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	outcome := &LinkOutcome{Status: LinkStatusSuccess}
	if primary != nil {
		outcome.LinkedName = primary.FirstName
	}
	return outcome, nil
}

func (l *LinkService) LinkedAccounts(ctx context.Context, accountID uuid.UUID) ([]response_models.LinkedAccount, error) {

	links, err := l.linkRepo.LinksFor(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	accounts := make([]response_models.LinkedAccount, 0, len(links))
	for _, link := range links {
		otherID := link.PrimaryAccountID
		if otherID == accountID {
			otherID = link.SupportAccountID
		}

		other, err := l.accountRepo.FindById(ctx, otherID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other == nil {
			continue
		}

		accounts = append(accounts, response_models.LinkedAccount{
			AccountID:   other.ID.String(),
			Name:        other.FirstName + " " + other.LastName,
			AccountType: other.AccountType,
		})
	}

	return accounts, nil
}

func (l *LinkService) IsLinkedPair(ctx context.Context, primaryAccountID, supportAccountID uuid.UUID) (bool, error) {
	linked, err := l.linkRepo.LinkExists(ctx, primaryAccountID, supportAccountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return linked, nil
}
