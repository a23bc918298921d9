package response_models

type JournalEntryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Mood      string `json:"mood,omitempty"`
	CreatedAt int64  `json:"created_at"`
}
