package request_models

type RecordAttemptRequest struct {
	Exercise        string  `json:"exercise" binding:"required"`
	Accuracy        float64 `json:"accuracy" binding:"min=0,max=1"`
	AvgReactionTime float64 `json:"avg_reaction_time" binding:"min=0"`
	AttemptedAt     string  `json:"attempted_at"`
}
