package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/models/db_models"
)

func newLinkFixture(t *testing.T) (*fakeLinkRepo, *fakeAccountRepo, LinkServiceInterface) {
	t.Helper()
	linkRepo := newFakeLinkRepo()
	accountRepo := newFakeAccountRepo()
	service := NewLinkService(linkRepo, accountRepo, 5*time.Minute)
	return linkRepo, accountRepo, service
}

func addAccount(t *testing.T, repo *fakeAccountRepo, firstName, accountType string) uuid.UUID {
	t.Helper()
	account := &db_models.Account{
		FirstName:   firstName,
		LastName:    "Tester",
		Email:       firstName + "@example.com",
		AccountType: accountType,
	}
	require.NoError(t, repo.Insert(context.Background(), account))
	return account.ID
}

func TestGenerateCodeFormat(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)

	require.Len(t, otp.Otp, 6)
	for _, r := range otp.Otp {
		assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", otp.Otp)
	}

	expires, err := time.Parse(time.RFC3339, otp.ExpiresAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), expires, 5*time.Second)
}

func TestGenerateCodeReplacesPrevious(t *testing.T) {
	linkRepo, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)

	first, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)
	second, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)

	if first.Otp != second.Otp {
		stale, err := linkRepo.FindCodeByValue(context.Background(), first.Otp)
		require.NoError(t, err)
		assert.Nil(t, stale, "previous code must be gone after regeneration")
	}

	live, err := linkRepo.FindCodeByValue(context.Background(), second.Otp)
	require.NoError(t, err)
	assert.NotNil(t, live)
}

func TestValidateCodeSuccess(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)
	supportID := addAccount(t, accountRepo, "bob", db_models.AccountTypeSupport)

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)

	outcome, err := service.ValidateCode(context.Background(), supportID, otp.Otp)
	require.NoError(t, err)
	assert.Equal(t, LinkStatusSuccess, outcome.Status)
	assert.Equal(t, "alice", outcome.LinkedName)

	linked, err := service.IsLinkedPair(context.Background(), primaryID, supportID)
	require.NoError(t, err)
	assert.True(t, linked)
}

func TestValidateCodeUnknown(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	supportID := addAccount(t, accountRepo, "bob", db_models.AccountTypeSupport)

	outcome, err := service.ValidateCode(context.Background(), supportID, "000000")
	require.NoError(t, err)
	assert.Equal(t, LinkStatusInvalid, outcome.Status)
}

func TestValidateCodeExpiredIsReported(t *testing.T) {
	linkRepo, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)
	supportID := addAccount(t, accountRepo, "bob", db_models.AccountTypeSupport)

	require.NoError(t, linkRepo.UpsertCode(context.Background(), primaryID, "123456", time.Now().UTC().Add(-time.Minute)))

	outcome, err := service.ValidateCode(context.Background(), supportID, "123456")
	require.NoError(t, err)
	assert.Equal(t, LinkStatusExpired, outcome.Status)

	// The expired code stays in place; only regeneration replaces it.
	stored, err := linkRepo.FindCodeByValue(context.Background(), "123456")
	require.NoError(t, err)
	assert.NotNil(t, stored)

	linked, err := service.IsLinkedPair(context.Background(), primaryID, supportID)
	require.NoError(t, err)
	assert.False(t, linked)
}

func TestValidateCodeSelfLinkRejected(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)

	outcome, err := service.ValidateCode(context.Background(), primaryID, otp.Otp)
	require.NoError(t, err)
	assert.Equal(t, LinkStatusInvalid, outcome.Status)
}

func TestValidateCodeAlreadyLinked(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)
	supportID := addAccount(t, accountRepo, "bob", db_models.AccountTypeSupport)

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)
	outcome, err := service.ValidateCode(context.Background(), supportID, otp.Otp)
	require.NoError(t, err)
	require.Equal(t, LinkStatusSuccess, outcome.Status)

	otp, err = service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)
	outcome, err = service.ValidateCode(context.Background(), supportID, otp.Otp)
	require.NoError(t, err)
	assert.Equal(t, LinkStatusAlreadyLinked, outcome.Status)
}

func TestValidateCodeSingleUse(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)
	firstSupport := addAccount(t, accountRepo, "bob", db_models.AccountTypeSupport)
	secondSupport := addAccount(t, accountRepo, "carol", db_models.AccountTypeSupport)

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)

	outcome, err := service.ValidateCode(context.Background(), firstSupport, otp.Otp)
	require.NoError(t, err)
	require.Equal(t, LinkStatusSuccess, outcome.Status)

	outcome, err = service.ValidateCode(context.Background(), secondSupport, otp.Otp)
	require.NoError(t, err)
	assert.Equal(t, LinkStatusInvalid, outcome.Status)
}

func TestValidateCodeConcurrentOneWinner(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)

	supports := make([]uuid.UUID, 8)
	for i := range supports {
		supports[i] = addAccount(t, accountRepo, "support"+string(rune('a'+i)), db_models.AccountTypeSupport)
	}

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	outcomes := make([]string, len(supports))
	for i, supportID := range supports {
		wg.Add(1)
		go func(i int, supportID uuid.UUID) {
			defer wg.Done()
			outcome, err := service.ValidateCode(context.Background(), supportID, otp.Otp)
			if err == nil {
				outcomes[i] = outcome.Status
			}
		}(i, supportID)
	}
	wg.Wait()

	winners := 0
	for _, status := range outcomes {
		if status == LinkStatusSuccess {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent caller may win the code")
}

func TestLinkedAccountsBothDirections(t *testing.T) {
	_, accountRepo, service := newLinkFixture(t)
	primaryID := addAccount(t, accountRepo, "alice", db_models.AccountTypePrimary)
	supportID := addAccount(t, accountRepo, "bob", db_models.AccountTypeSupport)

	otp, err := service.GenerateCode(context.Background(), primaryID)
	require.NoError(t, err)
	_, err = service.ValidateCode(context.Background(), supportID, otp.Otp)
	require.NoError(t, err)

	fromPrimary, err := service.LinkedAccounts(context.Background(), primaryID)
	require.NoError(t, err)
	require.Len(t, fromPrimary, 1)
	assert.Equal(t, supportID.String(), fromPrimary[0].AccountID)

	fromSupport, err := service.LinkedAccounts(context.Background(), supportID)
	require.NoError(t, err)
	require.Len(t, fromSupport, 1)
	assert.Equal(t, primaryID.String(), fromSupport[0].AccountID)
}
