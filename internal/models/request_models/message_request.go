package request_models

type PostMessagesRequest struct {
	OwnerAccountID string   `json:"owner_account_id" binding:"required,uuid"`
	Messages       []string `json:"messages" binding:"required,min=1,dive,required"`
}
