package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"carelink/internal/models/db_models"
	"carelink/internal/repositories"
	"carelink/pkg/utils"
)

// In-memory repository fakes used across the service tests.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, lastLogin int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.accounts[id]; ok {
		account.LastLogin = lastLogin
	}
	return nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.accounts[id]; ok {
		account.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeAccountRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, id)
	return nil
}

type fakeLinkRepo struct {
	mu    sync.Mutex
	codes map[uuid.UUID]*db_models.OtpCode
	links []db_models.Link
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{codes: make(map[uuid.UUID]*db_models.OtpCode)}
}

func (f *fakeLinkRepo) UpsertCode(ctx context.Context, primaryAccountID uuid.UUID, code string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, stored := range f.codes {
		if stored.PrimaryAccountID == primaryAccountID {
			delete(f.codes, id)
		}
	}
	stored := &db_models.OtpCode{
		PrimaryAccountID: primaryAccountID,
		Code:             code,
		ExpiresAt:        expiresAt,
	}
	stored.ID = uuid.New()
	f.codes[stored.ID] = stored
	return nil
}

func (f *fakeLinkRepo) FindCodeByValue(ctx context.Context, code string) (*db_models.OtpCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.codes {
		if stored.Code == code {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLinkRepo) ConsumeCode(ctx context.Context, codeID uuid.UUID, primaryAccountID, supportAccountID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.codes[codeID]; !ok {
		return utils.ErrCodeConsumed
	}
	for _, link := range f.links {
		if link.PrimaryAccountID == primaryAccountID && link.SupportAccountID == supportAccountID {
			return utils.ErrAlreadyLinked
		}
	}
	f.links = append(f.links, db_models.Link{
		PrimaryAccountID: primaryAccountID,
		SupportAccountID: supportAccountID,
	})
	delete(f.codes, codeID)
	return nil
}

func (f *fakeLinkRepo) LinkExists(ctx context.Context, primaryAccountID, supportAccountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, link := range f.links {
		if link.PrimaryAccountID == primaryAccountID && link.SupportAccountID == supportAccountID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLinkRepo) LinksFor(ctx context.Context, accountID uuid.UUID) ([]db_models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Link
	for _, link := range f.links {
		if link.PrimaryAccountID == accountID || link.SupportAccountID == accountID {
			out = append(out, link)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*db_models.Message
	failWith error
}

func (f *fakeMessageRepo) InsertBatch(ctx context.Context, messages []*db_models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for _, message := range messages {
		if message.ID == uuid.Nil {
			message.ID = uuid.New()
		}
		f.messages = append(f.messages, message)
	}
	return nil
}

func (f *fakeMessageRepo) ListByOwner(ctx context.Context, ownerAccountID uuid.UUID) ([]db_models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Message
	// Newest first, matching the repository ordering.
	for i := len(f.messages) - 1; i >= 0; i-- {
		if f.messages[i].OwnerAccountID == ownerAccountID {
			out = append(out, *f.messages[i])
		}
	}
	return out, nil
}

type fakeUploadRepo struct {
	mu       sync.Mutex
	uploads  []*db_models.Upload
	counters map[uuid.UUID]int64
	analyses map[uuid.UUID]string
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{
		counters: make(map[uuid.UUID]int64),
		analyses: make(map[uuid.UUID]string),
	}
}

func (f *fakeUploadRepo) InsertNextIndex(ctx context.Context, upload *db_models.Upload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	upload.MediaIndex = f.counters[upload.OwnerAccountID]
	f.counters[upload.OwnerAccountID]++
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	copied := *upload
	f.uploads = append(f.uploads, &copied)
	return nil
}

func (f *fakeUploadRepo) UpdateAnalysis(ctx context.Context, id uuid.UUID, status, scene, quickAccess string, labels pq.StringArray, embedding *pgvector.Vector) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyses[id] = status
	for _, upload := range f.uploads {
		if upload.ID == id {
			upload.AnalysisStatus = status
			upload.Scene = scene
			upload.QuickAccess = quickAccess
			upload.Labels = labels
			if embedding != nil {
				upload.Embedding = *embedding
			}
		}
	}
	return nil
}

func (f *fakeUploadRepo) ListByOwner(ctx context.Context, ownerAccountID uuid.UUID) ([]db_models.Upload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Upload
	for _, upload := range f.uploads {
		if upload.OwnerAccountID == ownerAccountID {
			out = append(out, *upload)
		}
	}
	return out, nil
}

func (f *fakeUploadRepo) FindByIndex(ctx context.Context, ownerAccountID uuid.UUID, mediaIndex int64) (*db_models.Upload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, upload := range f.uploads {
		if upload.OwnerAccountID == ownerAccountID && upload.MediaIndex == mediaIndex {
			copied := *upload
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUploadRepo) CounterFor(ctx context.Context, ownerAccountID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters[ownerAccountID], nil
}

func (f *fakeUploadRepo) FindSimilar(ctx context.Context, ownerAccountID uuid.UUID, vector pgvector.Vector, limit int) ([]repositories.SimilarUploadRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repositories.SimilarUploadRow
	for _, upload := range f.uploads {
		if upload.OwnerAccountID == ownerAccountID && upload.AnalysisStatus == db_models.AnalysisStatusDone {
			out = append(out, repositories.SimilarUploadRow{Upload: *upload, Similarity: 0.9})
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeExerciseRepo struct {
	mu       sync.Mutex
	attempts []db_models.ExerciseAttempt
}

func (f *fakeExerciseRepo) Insert(ctx context.Context, attempt *db_models.ExerciseAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeExerciseRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ExerciseAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.ExerciseAttempt
	for _, attempt := range f.attempts {
		if attempt.AccountID == accountID {
			out = append(out, attempt)
		}
	}
	return out, nil
}

type fakeJournalRepo struct {
	mu      sync.Mutex
	entries []db_models.JournalEntry
}

func (f *fakeJournalRepo) Insert(ctx context.Context, entry *db_models.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJournalRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.JournalEntry
	for _, entry := range f.entries {
		if entry.AccountID == accountID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

type fakeMailService struct {
	mu     sync.Mutex
	sent   []string
	tokens []string
	fail   bool
}

func (f *fakeMailService) SendMailToResetPassword(email, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, email)
	f.tokens = append(f.tokens, token)
	return nil
}

type fakeObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (f *fakeObjectStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

type fakeVisionClient struct {
	mu          sync.Mutex
	analysis    *utils.ImageAnalysis
	annotateErr error
	calls       int
}

func (f *fakeVisionClient) AnnotateImage(ctx context.Context, img utils.ImagePayload) (*utils.ImageAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.annotateErr != nil {
		return nil, f.annotateErr
	}
	if f.analysis != nil {
		return f.analysis, nil
	}
	return &utils.ImageAnalysis{
		Labels:      []string{"person", "outdoors"},
		Scene:       "a walk in the park",
		QuickAccess: "Park walk",
	}, nil
}

func (f *fakeVisionClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return utils.TextToVector(text), nil
}

func (f *fakeVisionClient) Close() error { return nil }
