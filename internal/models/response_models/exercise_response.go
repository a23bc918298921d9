package response_models

type DailyExerciseSummary struct {
	Date                   string  `json:"date"`
	Attempts               int     `json:"attempts"`
	AvgAccuracy            float64 `json:"avg_accuracy"`
	AvgReactionTime        float64 `json:"avg_reaction_time"`
	NormalizedAccuracy     float64 `json:"normalized_accuracy"`
	NormalizedReactionTime float64 `json:"normalized_reaction_time"`
}
