package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"carelink/internal/infra"
	"carelink/internal/models/db_models"
	"carelink/internal/models/response_models"
	"carelink/internal/repositories"
	"carelink/pkg/utils"
)

const searchResultLimit = 10

// UploadInput carries one multipart upload through the media pipeline.
type UploadInput struct {
	OwnerAccountID uuid.UUID
	OriginalName   string
	MimeType       string
	Data           []byte
	Description    string
	CapturedOn     string
}

type MediaServiceInterface interface {
	Upload(ctx context.Context, uploader *Principal, input UploadInput) (*response_models.MediaItem, error)
	SignedURLs(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID) ([]response_models.MediaURL, error)
	// RandomUnseen picks a uniformly random media index the caller has not
	// visited yet, or ErrNoUnseenMedia when every index has been seen.
	RandomUnseen(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID, visited []int64) (*response_models.MediaItem, error)
	Search(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID, query string) ([]response_models.MediaSearchResult, error)
	// Annotate runs image analysis for a stored upload and persists the
	// result. Called asynchronously after Upload returns; exported so the
	// pipeline can also be driven synchronously.
	Annotate(uploadID uuid.UUID, storagePath string, data []byte, mimeType, description string)
}

type MediaService struct {
	uploadRepo   repositories.UploadRepository
	linkService  LinkServiceInterface
	storage      infra.ObjectStorage
	vision       utils.VisionClientInterface
	signedURLTTL time.Duration
}

func NewMediaService(
	uploadRepo repositories.UploadRepository,
	linkService LinkServiceInterface,
	storage infra.ObjectStorage,
	vision utils.VisionClientInterface,
	signedURLTTL time.Duration,
) MediaServiceInterface {
	return &MediaService{
		uploadRepo:   uploadRepo,
		linkService:  linkService,
		storage:      storage,
		vision:       vision,
		signedURLTTL: signedURLTTL,
	}
}

func (m *MediaService) Upload(ctx context.Context, uploader *Principal, input UploadInput) (*response_models.MediaItem, error) {

	if err := m.authorize(ctx, uploader, input.OwnerAccountID); err != nil {
		return nil, err
	}

	mediaType, err := utils.ClassifyMime(input.MimeType)
	if err != nil {
		return nil, err
	}

	if input.CapturedOn != "" {
		if _, err := utils.ParseDay(input.CapturedOn); err != nil {
			return nil, err
		}
	}

	storagePath := fmt.Sprintf("uploads/%s/%s/%d-%s",
		input.OwnerAccountID, mediaType, time.Now().UnixNano(), filepath.Base(input.OriginalName))

	if err := m.storage.Put(ctx, storagePath, bytes.NewReader(input.Data), input.MimeType); err != nil {
		log.Printf("Media upload to storage failed for owner %s: %v", input.OwnerAccountID, err)
		return nil, utils.ErrStorageError
	}

	analysisStatus := db_models.AnalysisStatusSkipped
	if mediaType == utils.MediaTypeImage {
		analysisStatus = db_models.AnalysisStatusPending
	}

	upload := &db_models.Upload{
		OwnerAccountID:    input.OwnerAccountID,
		StoragePath:       storagePath,
		OriginalName:      input.OriginalName,
		MediaType:         mediaType,
		Description:       input.Description,
		CapturedOn:        input.CapturedOn,
		UploaderAccountID: uploader.AccountID,
		UploaderName:      uploader.FirstName,
		AnalysisStatus:    analysisStatus,
	}

	if err := m.uploadRepo.InsertNextIndex(ctx, upload); err != nil {
		log.Printf("Media metadata insert failed for owner %s: %v", input.OwnerAccountID, err)
		return nil, utils.ErrDatabaseError
	}

	if analysisStatus == db_models.AnalysisStatusPending {
		go m.Annotate(upload.ID, storagePath, input.Data, input.MimeType, input.Description)
	}

	url, err := m.storage.PresignGet(ctx, storagePath, m.signedURLTTL)
	if err != nil {
		log.Printf("Presign failed for owner %s: %v", input.OwnerAccountID, err)
		return nil, utils.ErrStorageError
	}

	return &response_models.MediaItem{
		MediaIndex:   upload.MediaIndex,
		URL:          url,
		UploaderName: upload.UploaderName,
		MediaType:    upload.MediaType,
		Description:  upload.Description,
	}, nil
}

// Annotate is best effort: any failure marks the upload's analysis as
// errored and leaves the upload itself intact.
func (m *MediaService) Annotate(uploadID uuid.UUID, storagePath string, data []byte, mimeType, description string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Providers that fetch the image themselves need a reachable URL.
	presignedURL, err := m.storage.PresignGet(ctx, storagePath, m.signedURLTTL)
	if err != nil {
		log.Printf("Presign for analysis failed for upload %s: %v", uploadID, err)
		presignedURL = ""
	}

	analysis, err := m.vision.AnnotateImage(ctx, utils.ImagePayload{
		Data:     data,
		MimeType: mimeType,
		URL:      presignedURL,
		Hint:     description,
	})
	if err != nil {
		log.Printf("Image analysis failed for upload %s: %v", uploadID, err)
		if updateErr := m.uploadRepo.UpdateAnalysis(ctx, uploadID, db_models.AnalysisStatusError, "", "", nil, nil); updateErr != nil {
			log.Printf("Failed to record analysis error for upload %s: %v", uploadID, updateErr)
		}
		return
	}

	embeddingText := description
	if embeddingText == "" {
		embeddingText = analysis.Scene
	}
	embedding, err := m.vision.GetEmbedding(ctx, embeddingText)
	if err != nil {
		log.Printf("Embedding failed for upload %s: %v", uploadID, err)
		embedding = utils.TextToVector(embeddingText)
	}

	err = m.uploadRepo.UpdateAnalysis(ctx, uploadID, db_models.AnalysisStatusDone,
		analysis.Scene, analysis.QuickAccess, pq.StringArray(analysis.Labels), &embedding)
	if err != nil {
		log.Printf("Failed to store analysis for upload %s: %v", uploadID, err)
	}
}

func (m *MediaService) SignedURLs(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID) ([]response_models.MediaURL, error) {

	if err := m.authorize(ctx, requester, ownerAccountID); err != nil {
		return nil, err
	}

	uploads, err := m.uploadRepo.ListByOwner(ctx, ownerAccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	urls := make([]response_models.MediaURL, 0, len(uploads))
	for _, upload := range uploads {
		url, err := m.storage.PresignGet(ctx, upload.StoragePath, m.signedURLTTL)
		if err != nil {
			log.Printf("Presign failed for owner %s: %v", ownerAccountID, err)
			return nil, utils.ErrStorageError
		}
		urls = append(urls, response_models.MediaURL{
			UploaderName: upload.UploaderName,
			URL:          url,
			QuickAccess:  upload.QuickAccess,
		})
	}

	return urls, nil
}

func (m *MediaService) RandomUnseen(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID, visited []int64) (*response_models.MediaItem, error) {

	if err := m.authorize(ctx, requester, ownerAccountID); err != nil {
		return nil, err
	}

	total, err := m.uploadRepo.CounterFor(ctx, ownerAccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if total == 0 {
		return nil, utils.ErrNoUnseenMedia
	}

	seen := make(map[int64]bool, len(visited))
	for _, index := range visited {
		seen[index] = true
	}

	unseen := make([]int64, 0, total)
	for index := int64(0); index < total; index++ {
		if !seen[index] {
			unseen = append(unseen, index)
		}
	}
	if len(unseen) == 0 {
		return nil, utils.ErrNoUnseenMedia
	}

	pick := unseen[rand.Intn(len(unseen))]

	upload, err := m.uploadRepo.FindByIndex(ctx, ownerAccountID, pick)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if upload == nil {
		return nil, utils.ErrUploadNotFound
	}

	url, err := m.storage.PresignGet(ctx, upload.StoragePath, m.signedURLTTL)
	if err != nil {
		log.Printf("Presign failed for owner %s: %v", ownerAccountID, err)
		return nil, utils.ErrStorageError
	}

	return &response_models.MediaItem{
		MediaIndex:   upload.MediaIndex,
		URL:          url,
		UploaderName: upload.UploaderName,
		MediaType:    upload.MediaType,
		Description:  upload.Description,
		QuickAccess:  upload.QuickAccess,
	}, nil
}

func (m *MediaService) Search(ctx context.Context, requester *Principal, ownerAccountID uuid.UUID, query string) ([]response_models.MediaSearchResult, error) {

	if err := m.authorize(ctx, requester, ownerAccountID); err != nil {
		return nil, err
	}

	embedding, err := m.vision.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Query embedding failed for owner %s: %v", ownerAccountID, err)
		embedding = utils.TextToVector(query)
	}

	rows, err := m.uploadRepo.FindSimilar(ctx, ownerAccountID, embedding, searchResultLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.MediaSearchResult, 0, len(rows))
	for _, row := range rows {
		url, err := m.storage.PresignGet(ctx, row.StoragePath, m.signedURLTTL)
		if err != nil {
			log.Printf("Presign failed for owner %s: %v", ownerAccountID, err)
			return nil, utils.ErrStorageError
		}
		results = append(results, response_models.MediaSearchResult{
			MediaIndex:   row.MediaIndex,
			URL:          url,
			UploaderName: row.UploaderName,
			Scene:        row.Scene,
			QuickAccess:  row.QuickAccess,
			Similarity:   row.Similarity,
		})
	}

	return results, nil
}

func (m *MediaService) authorize(ctx context.Context, principal *Principal, ownerAccountID uuid.UUID) error {
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
