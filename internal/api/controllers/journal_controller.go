package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type JournalController struct {
	journalService services.JournalServiceInterface
}

func NewJournalController(journalService services.JournalServiceInterface) *JournalController {
	return &JournalController{
		journalService: journalService,
	}
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.CreateJournalEntryRequest true "Journal entry payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/journal [post]
func (j *JournalController) CreateEntry(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := j.journalService.CreateEntry(c.Request.Context(), principal.AccountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Journal entry created successfully")
}

// ListEntries godoc
// @Summary List journal entries
// @Description Entries newest first; a linked support account may read a primary's journal
// @Tags Journal
// @Produce json
// @Param account_id query string false "Account; defaults to the caller"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/journal [get]
func (j *JournalController) ListEntries(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	accountID := principal.AccountID
	if raw := c.Query("account_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
			return
		}
		accountID = parsed
	}

	entries, err := j.journalService.ListEntries(c.Request.Context(), principal, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Journal entries fetched successfully")
}
