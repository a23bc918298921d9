package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/models/request_models"
	"carelink/internal/models/response_models"
	"carelink/internal/repositories"
	mem "carelink/pkg/memcache"
	"carelink/pkg/utils"
	"time"
)

// Principal is the identity resolved from a verified bearer credential,
// held only for the duration of the request.
type Principal struct {
	AccountID   uuid.UUID
	AccountType string
	FirstName   string
}

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, token, newPassword string) error
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	Profile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	VerifyCredential(ctx context.Context, credential string) (*Principal, error)
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	linkRepo      repositories.LinkRepository
	mailService   IMailService
	resetTokens   mem.ResetTokenStore
	resetTokenTTL time.Duration
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	linkRepo repositories.LinkRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	resetTokenTTL time.Duration,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		linkRepo:      linkRepo,
		mailService:   mailService,
		resetTokens:   resetTokens,
		resetTokenTTL: resetTokenTTL,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {

	if !utils.CheckValidEmail(request.Email) {
		return nil, utils.ErrInvalidEmail
	}
	if !utils.CheckPasswordStrength(request.Password) {
		return nil, utils.ErrWeakPassword
	}

	dobFull, dob6Digit, err := utils.FormatDOB(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Email:             request.Email,
		PasswordHash:      hashedPassword,
		DateOfBirthFull:   dobFull,
		DateOfBirth6Digit: dob6Digit,
		AccountType:       request.AccountType,
		LastLogin:         time.Now().Unix(),
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(newAccount.ID, newAccount.AccountType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:       token,
		AccountType: newAccount.AccountType,
		FirstName:   newAccount.FirstName,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := a.accountRepo.UpdateLastLogin(ctx, account.ID, time.Now().Unix()); err != nil {
		log.Printf("Failed to update last login for account %s: %v", account.ID, err)
	}

	token, err := utils.CreateToken(account.ID, account.AccountType)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		Token:       token,
		AccountType: account.AccountType,
		FirstName:   account.FirstName,
	}, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, a.resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Failed to send reset mail for account %s: %v", account.ID, err)
		return utils.ErrMailError
	}

	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, token, newPassword string) error {

	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	if !utils.CheckPasswordStrength(newPassword) {
		return utils.ErrWeakPassword
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := a.accountRepo.DeleteCascade(ctx, accountID); err != nil {
		log.Printf("Failed to delete account %s: %v", accountID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Profile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	links, err := a.linkRepo.LinksFor(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	linkedAccounts := make([]response_models.LinkedAccount, 0, len(links))
	for _, link := range links {
		otherID := link.PrimaryAccountID
		if otherID == accountID {
			otherID = link.SupportAccountID
		}

		other, err := a.accountRepo.FindById(ctx, otherID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other == nil {
			continue
		}

		linkedAccounts = append(linkedAccounts, response_models.LinkedAccount{
			AccountID:   other.ID.String(),
			Name:        other.FirstName + " " + other.LastName,
			AccountType: other.AccountType,
		})
	}

	return &response_models.ProfileResponse{
		FirstName:      account.FirstName,
		AccountType:    account.AccountType,
		LinkedAccounts: linkedAccounts,
	}, nil
}

// VerifyCredential is tri-state: a decoded principal, ErrInvalidToken for
// any decode/expiry/unknown-account failure, or ErrDatabaseError when the
// account store cannot be reached.
func (a *AccountService) VerifyCredential(ctx context.Context, credential string) (*Principal, error) {

	claims, err := utils.ValidateToken(credential)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidToken
	}

	return &Principal{
		AccountID:   account.ID,
		AccountType: account.AccountType,
		FirstName:   account.FirstName,
	}, nil
}
