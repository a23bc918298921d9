package services

import (
	"context"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/models/request_models"
	"carelink/internal/models/response_models"
	"carelink/internal/repositories"
	"carelink/pkg/utils"
)

type JournalServiceInterface interface {
	CreateEntry(ctx context.Context, accountID uuid.UUID, request request_models.CreateJournalEntryRequest) (*response_models.JournalEntryResponse, error)
	// ListEntries returns an account's entries, newest first. A linked
	// support account may read a primary's journal.
	ListEntries(ctx context.Context, requester *Principal, accountID uuid.UUID) ([]response_models.JournalEntryResponse, error)
}

type JournalService struct {
	journalRepo repositories.JournalRepository
	linkService LinkServiceInterface
}

func NewJournalService(journalRepo repositories.JournalRepository, linkService LinkServiceInterface) JournalServiceInterface {
	return &JournalService{
		journalRepo: journalRepo,
		linkService: linkService,
	}
}

func (j *JournalService) CreateEntry(ctx context.Context, accountID uuid.UUID, request request_models.CreateJournalEntryRequest) (*response_models.JournalEntryResponse, error) {

	entry := &db_models.JournalEntry{
		AccountID: accountID,
		Title:     request.Title,
		Content:   request.Content,
		Mood:      request.Mood,
	}

	if err := j.journalRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toJournalResponse(entry), nil
}

func (j *JournalService) ListEntries(ctx context.Context, requester *Principal, accountID uuid.UUID) ([]response_models.JournalEntryResponse, error) {

	if requester.AccountID != accountID {
		linked, err := j.linkService.IsLinkedPair(ctx, accountID, requester.AccountID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, utils.ErrNotLinked
		}
	}

	entries, err := j.journalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.JournalEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toJournalResponse(&entries[i]))
	}
	return responses, nil
}

func toJournalResponse(entry *db_models.JournalEntry) *response_models.JournalEntryResponse {
	return &response_models.JournalEntryResponse{
		ID:        entry.ID.String(),
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		CreatedAt: entry.CreatedAt,
	}
}
