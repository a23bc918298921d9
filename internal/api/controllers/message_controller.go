package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type MessageController struct {
	messageService services.MessageServiceInterface
}

func NewMessageController(messageService services.MessageServiceInterface) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// PostMessages godoc
// @Summary Post a batch of messages
// @Description Writes one or more messages onto a linked primary account's board
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body request_models.PostMessagesRequest true "Message batch payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/messages [put]
func (m *MessageController) PostMessages(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.PostMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ownerID, err := uuid.Parse(req.OwnerAccountID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid owner account id")
		return
	}

	result, err := m.messageService.PostMessages(c.Request.Context(), principal, ownerID, req.Messages)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Messages posted successfully")
}

// ListMessages godoc
// @Summary List messages
// @Description Returns all messages on the board, newest first
// @Tags Messages
// @Produce json
// @Param owner_account_id query string false "Board owner; defaults to the caller"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/messages [get]
func (m *MessageController) ListMessages(c *gin.Context) {
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

	messages, err := m.messageService.ListMessages(c.Request.Context(), principal, ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}
