package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/models/db_models"
	"carelink/pkg/utils"
)

type messageFixture struct {
	messageRepo *fakeMessageRepo
	linkRepo    *fakeLinkRepo
	accountRepo *fakeAccountRepo
	service     MessageServiceInterface
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	messageRepo := &fakeMessageRepo{}
	linkRepo := newFakeLinkRepo()
	accountRepo := newFakeAccountRepo()
	linkService := NewLinkService(linkRepo, accountRepo, 5*time.Minute)
	service := NewMessageService(messageRepo, linkService)
	return &messageFixture{
		messageRepo: messageRepo,
		linkRepo:    linkRepo,
		accountRepo: accountRepo,
		service:     service,
	}
}

func linkPair(t *testing.T, f *messageFixture, primaryID, supportID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.linkRepo.UpsertCode(context.Background(), primaryID, "123456", time.Now().UTC().Add(time.Minute)))
	code, err := f.linkRepo.FindCodeByValue(context.Background(), "123456")
	require.NoError(t, err)
	require.NoError(t, f.linkRepo.ConsumeCode(context.Background(), code.ID, primaryID, supportID))
}

func TestPostMessagesBatch(t *testing.T) {
	f := newMessageFixture(t)
	primaryID := uuid.New()
	sender := &Principal{AccountID: uuid.New(), AccountType: db_models.AccountTypeSupport, FirstName: "bob"}
	linkPair(t, f, primaryID, sender.AccountID)

	result, err := f.service.PostMessages(context.Background(), sender, primaryID, []string{"good morning", "see you soon"})
	require.NoError(t, err)
	assert.Len(t, result.MessageIDs, 2)

	owner := &Principal{AccountID: primaryID, AccountType: db_models.AccountTypePrimary, FirstName: "alice"}
	messages, err := f.service.ListMessages(context.Background(), owner, primaryID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	for _, message := range messages {
		assert.Equal(t, "bob", message.SenderName)
	}
}

func TestPostMessagesDayGranularTimestamp(t *testing.T) {
	f := newMessageFixture(t)
	owner := &Principal{AccountID: uuid.New(), AccountType: db_models.AccountTypePrimary, FirstName: "alice"}

	_, err := f.service.PostMessages(context.Background(), owner, owner.AccountID, []string{"note to self"})
	require.NoError(t, err)

	messages, err := f.service.ListMessages(context.Background(), owner, owner.AccountID)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	today := utils.FormatDay(utils.DayUTC(utils.NowUTC()))
	assert.Equal(t, today, messages[0].PostedOn)

	// The stored timestamp is truncated to midnight UTC.
	stored := f.messageRepo.messages[0]
	assert.Equal(t, 0, stored.PostedOn.Hour())
	assert.Equal(t, 0, stored.PostedOn.Minute())
	assert.Equal(t, time.UTC, stored.PostedOn.Location())
}

func TestPostMessagesUnlinkedSenderForbidden(t *testing.T) {
	f := newMessageFixture(t)
	primaryID := uuid.New()
	stranger := &Principal{AccountID: uuid.New(), AccountType: db_models.AccountTypeSupport, FirstName: "mallory"}

	_, err := f.service.PostMessages(context.Background(), stranger, primaryID, []string{"hi"})
	assert.ErrorIs(t, err, utils.ErrNotLinked)
	assert.Empty(t, f.messageRepo.messages)
}

func TestListMessagesUnlinkedReaderForbidden(t *testing.T) {
	f := newMessageFixture(t)
	primaryID := uuid.New()
	stranger := &Principal{AccountID: uuid.New(), AccountType: db_models.AccountTypeSupport, FirstName: "mallory"}

	_, err := f.service.ListMessages(context.Background(), stranger, primaryID)
	assert.ErrorIs(t, err, utils.ErrNotLinked)
}

func TestListMessagesNewestFirst(t *testing.T) {
	f := newMessageFixture(t)
	owner := &Principal{AccountID: uuid.New(), AccountType: db_models.AccountTypePrimary, FirstName: "alice"}

	_, err := f.service.PostMessages(context.Background(), owner, owner.AccountID, []string{"first"})
	require.NoError(t, err)
	_, err = f.service.PostMessages(context.Background(), owner, owner.AccountID, []string{"second"})
	require.NoError(t, err)

	messages, err := f.service.ListMessages(context.Background(), owner, owner.AccountID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Content)
	assert.Equal(t, "first", messages[1].Content)
}
