package response_models

type LinkedAccount struct {
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
}

type OtpResponse struct {
	Otp       string `json:"otp"`
	ExpiresAt string `json:"expires_at"`
}

type LinkResultResponse struct {
	Result     string `json:"result"`
	LinkedName string `json:"linked_name,omitempty"`
}
