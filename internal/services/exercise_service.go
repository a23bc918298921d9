package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/models/request_models"
	"carelink/internal/models/response_models"
	"carelink/internal/repositories"
	"carelink/pkg/utils"
)

type ExerciseServiceInterface interface {
	// RecordAttempt stores one attempt for the authenticated account.
	// Attempts are recorded on exit regardless of completion.
	RecordAttempt(ctx context.Context, accountID uuid.UUID, request request_models.RecordAttemptRequest) error
	// Summary aggregates attempts per day and normalizes accuracy and
	// reaction time across the account's history. Reaction time is
	// inverted so that higher always means better.
	Summary(ctx context.Context, requester *Principal, accountID uuid.UUID) ([]response_models.DailyExerciseSummary, error)
}

type ExerciseService struct {
	exerciseRepo repositories.ExerciseRepository
	linkService  LinkServiceInterface
}

func NewExerciseService(exerciseRepo repositories.ExerciseRepository, linkService LinkServiceInterface) ExerciseServiceInterface {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		linkService:  linkService,
	}
}

func (e *ExerciseService) RecordAttempt(ctx context.Context, accountID uuid.UUID, request request_models.RecordAttemptRequest) error {

	attemptedAt := utils.DayUTC(utils.NowUTC())
	if request.AttemptedAt != "" {
		parsed, err := utils.ParseDay(request.AttemptedAt)
		if err != nil {
			return err
		}
		attemptedAt = parsed
	}

	attempt := &db_models.ExerciseAttempt{
		AccountID:       accountID,
		Exercise:        request.Exercise,
		Accuracy:        request.Accuracy,
		AvgReactionTime: request.AvgReactionTime,
		AttemptedAt:     attemptedAt,
	}

	if err := e.exerciseRepo.Insert(ctx, attempt); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *ExerciseService) Summary(ctx context.Context, requester *Principal, accountID uuid.UUID) ([]response_models.DailyExerciseSummary, error) {

	if requester.AccountID != accountID {
		linked, err := e.linkService.IsLinkedPair(ctx, accountID, requester.AccountID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, utils.ErrNotLinked
		}
	}

	attempts, err := e.exerciseRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(attempts) == 0 {
		return []response_models.DailyExerciseSummary{}, nil
	}

	type dayStats struct {
		attempts    int
		accuracySum float64
		reactionSum float64
	}

	byDay := make(map[string]*dayStats)
	for _, attempt := range attempts {
		day := utils.FormatDay(attempt.AttemptedAt)
		stats, ok := byDay[day]
		if !ok {
			stats = &dayStats{}
			byDay[day] = stats
		}
		stats.attempts++
		stats.accuracySum += attempt.Accuracy
		stats.reactionSum += attempt.AvgReactionTime
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	avgAccuracy := make([]float64, len(days))
	avgReaction := make([]float64, len(days))
	for i, day := range days {
		stats := byDay[day]
		avgAccuracy[i] = stats.accuracySum / float64(stats.attempts)
		avgReaction[i] = stats.reactionSum / float64(stats.attempts)
	}

	normAccuracy := utils.NormalizeMinMax(avgAccuracy, false)
	normReaction := utils.NormalizeMinMax(avgReaction, true)

	summaries := make([]response_models.DailyExerciseSummary, len(days))
	for i, day := range days {
		summaries[i] = response_models.DailyExerciseSummary{
			Date:                   day,
			Attempts:               byDay[day].attempts,
			AvgAccuracy:            avgAccuracy[i],
			AvgReactionTime:        avgReaction[i],
			NormalizedAccuracy:     normAccuracy[i],
			NormalizedReactionTime: normReaction[i],
		}
	}

	return summaries, nil
}
