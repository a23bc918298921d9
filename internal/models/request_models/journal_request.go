package request_models

type CreateJournalEntryRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood"`
}
