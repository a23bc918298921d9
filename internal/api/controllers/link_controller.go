package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/request_models"
	"carelink/internal/models/response_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type LinkController struct {
	linkService services.LinkServiceInterface
}

func NewLinkController(linkService services.LinkServiceInterface) *LinkController {
	return &LinkController{
		linkService: linkService,
	}
}

// GenerateOtp godoc
// @Summary Generate a linking code
// @Description Issues a fresh 6-digit code for the primary account, replacing any previous one
// @Tags Linking
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/link/otp [post]
func (l *LinkController) GenerateOtp(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	otp, err := l.linkService.GenerateCode(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, otp, "Linking code generated")
}

// ValidateOtp godoc
// @Summary Submit a linking code
// @Description A support account submits a code; the outcome is success, invalid, expired or already_linked
// @Tags Linking
// @Accept json
// @Produce json
// @Param request body request_models.ValidateOtpRequest true "Linking code payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/link/otp [put]
func (l *LinkController) ValidateOtp(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.ValidateOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome, err := l.linkService.ValidateCode(c.Request.Context(), principal.AccountID, req.Otp)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LinkResultResponse{
		Result:     outcome.Status,
		LinkedName: outcome.LinkedName,
	}, "Code processed")
}

// LinkedAccounts godoc
// @Summary List linked accounts
// @Tags Linking
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/link/accounts [get]
func (l *LinkController) LinkedAccounts(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	accounts, err := l.linkService.LinkedAccounts(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Linked accounts fetched successfully")
}
