package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

// Uploads are held in memory for classification and analysis; this caps
// the multipart file size.
const maxUploadBytes = 32 << 20

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// Upload godoc
// @Summary Upload a media file
// @Description Stores a file in a primary account's media space and queues image analysis
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param owner_account_id formData string true "Owner account id"
// @Param file formData file true "Media file"
// @Param description formData string false "Description"
// @Param captured_on formData string false "Capture date, YYYY-MM-DD"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/media [post]
func (m *MediaController) Upload(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.UploadMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ownerID, err := uuid.Parse(req.OwnerAccountID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid owner account id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing media file")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.RespondError(c, http.StatusBadRequest, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cannot read media file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cannot read media file")
		return
	}

	item, err := m.mediaService.Upload(c.Request.Context(), principal, services.UploadInput{
		OwnerAccountID: ownerID,
		OriginalName:   fileHeader.Filename,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		Data:           data,
		Description:    req.Description,
		CapturedOn:     req.CapturedOn,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Media uploaded successfully")
}

// SignedURLs godoc
// @Summary List signed media URLs
// @Description Returns a time-limited download URL per media object
// @Tags Media
// @Produce json
// @Param owner_account_id query string false "Owner; defaults to the caller"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/media/urls [get]
func (m *MediaController) SignedURLs(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	ownerID, ok := ownerFromQuery(c, principal)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid owner account id")
		return
	}

	urls, err := m.mediaService.SignedURLs(c.Request.Context(), principal, ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, urls, "Media URLs fetched successfully")
}

// RandomUnseen godoc
// @Summary Pick a random unseen media item
// @Description Returns a uniformly random media item whose index is not in the visited list
// @Tags Media
// @Produce json
// @Param owner_account_id query string false "Owner; defaults to the caller"
// @Param visited query string false "Comma-separated list of already seen indices"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/media/random [get]
func (m *MediaController) RandomUnseen(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	ownerID, ok := ownerFromQuery(c, principal)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid owner account id")
		return
	}

	visited, err := parseVisited(c.Query("visited"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid visited list")
		return
	}

	item, err := m.mediaService.RandomUnseen(c.Request.Context(), principal, ownerID, visited)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Media fetched successfully")
}

// Search godoc
// @Summary Search media by description
// @Description Embeds the query and returns the closest media by cosine similarity
// @Tags Media
// @Produce json
// @Param q query string true "Search query"
// @Param owner_account_id query string false "Owner; defaults to the caller"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/media/search [get]
func (m *MediaController) Search(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	ownerID, ok := ownerFromQuery(c, principal)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid owner account id")
		return
	}

	var req request_models.SearchMediaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search query")
		return
	}

	results, err := m.mediaService.Search(c.Request.Context(), principal, ownerID, req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Search results fetched successfully")
}

func parseVisited(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	visited := make([]int64, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		visited = append(visited, index)
	}
	return visited, nil
}
