package services

import (
	"context"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/models/response_models"
	"carelink/internal/repositories"
	"carelink/pkg/utils"
)

type MessageServiceInterface interface {
	// PostMessages writes a batch of messages from the sender onto the
	// owner's board. The sender must be the owner or linked to them.
	PostMessages(ctx context.Context, sender *Principal, ownerAccountID uuid.UUID, contents []string) (*response_models.PostMessagesResponse, error)
	ListMessages(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID) ([]response_models.MessageResponse, error)
}

type MessageService struct {
	messageRepo repositories.MessageRepository
	linkService LinkServiceInterface
}

func NewMessageService(messageRepo repositories.MessageRepository, linkService LinkServiceInterface) MessageServiceInterface {
	return &MessageService{
		messageRepo: messageRepo,
		linkService: linkService,
	}
}

func (m *MessageService) PostMessages(ctx context.Context, sender *Principal, ownerAccountID uuid.UUID, contents []string) (*response_models.PostMessagesResponse, error) {

	if err := m.authorize(ctx, sender, ownerAccountID); err != nil {
		return nil, err
	}

	postedOn := utils.DayUTC(utils.NowUTC())

	messages := make([]*db_models.Message, 0, len(contents))
	for _, content := range contents {
		messages = append(messages, &db_models.Message{
			OwnerAccountID: ownerAccountID,
			SenderName:     sender.FirstName,
			Content:        content,
			PostedOn:       postedOn,
		})
	}

	if err := m.messageRepo.InsertBatch(ctx, messages); err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID.String())
	}

	return &response_models.PostMessagesResponse{MessageIDs: ids}, nil
}

func (m *MessageService) ListMessages(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID) ([]response_models.MessageResponse, error) {

	if err := m.authorize(ctx, requester, ownerAccountID); err != nil {
		return nil, err
	}

	messages, err := m.messageRepo.ListByOwner(ctx, ownerAccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, response_models.MessageResponse{
			ID:         message.ID.String(),
			SenderName: message.SenderName,
			Content:    message.Content,
			PostedOn:   utils.FormatDay(message.PostedOn),
		})
	}

	return responses, nil
}

func (m *MessageService) authorize(ctx context.Context, principal *Principal, ownerAccountID uuid.UUID) error {
	if principal.AccountID == ownerAccountID {
		return nil
	}

	linked, err := m.linkService.IsLinkedPair(ctx, ownerAccountID, principal.AccountID)
	if err != nil {
		return err
	}
	if !linked {
		return utils.ErrNotLinked
	}
	return nil
}
