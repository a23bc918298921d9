package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type ExerciseController struct {
	exerciseService services.ExerciseServiceInterface
}

func NewExerciseController(exerciseService services.ExerciseServiceInterface) *ExerciseController {
	return &ExerciseController{
		exerciseService: exerciseService,
	}
}

// RecordAttempt godoc
// @Summary Record an exercise attempt
// @Description Stores one attempt for the authenticated account
// @Tags Exercises
// @Accept json
// @Produce json
// @Param request body request_models.RecordAttemptRequest true "Attempt payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/exercises [post]
func (e *ExerciseController) RecordAttempt(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req request_models.RecordAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.exerciseService.RecordAttempt(c.Request.Context(), principal.AccountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Attempt recorded successfully")
}

// Summary godoc
// @Summary Daily exercise summary
// @Description Per-day averages with normalized accuracy and reaction time
// @Tags Exercises
// @Produce json
// @Param account_id query string false "Account; defaults to the caller"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/exercises/summary [get]
func (e *ExerciseController) Summary(c *gin.Context) {
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

	summary, err := e.exerciseService.Summary(c.Request.Context(), principal, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Summary fetched successfully")
}
