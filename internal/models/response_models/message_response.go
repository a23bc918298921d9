package response_models

type MessageResponse struct {
	ID         string `json:"id"`
	SenderName string `json:"sender_name"`
	Content    string `json:"content"`
	PostedOn   string `json:"posted_on"`
}

type PostMessagesResponse struct {
	MessageIDs []string `json:"message_ids"`
}
