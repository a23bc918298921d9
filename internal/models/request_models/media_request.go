package request_models

// UploadMediaRequest binds the non-file fields of the multipart upload form.
type UploadMediaRequest struct {
	OwnerAccountID string `form:"owner_account_id" binding:"required,uuid"`
	Description    string `form:"description"`
	CapturedOn     string `form:"captured_on"`
}

type SearchMediaRequest struct {
	Query string `form:"q" binding:"required,min=2"`
}
