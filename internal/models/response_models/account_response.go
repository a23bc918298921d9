package response_models

type AuthResponse struct {
	Token       string `json:"token"`
	AccountType string `json:"account_type"`
	FirstName   string `json:"first_name"`
}

type ProfileResponse struct {
	FirstName      string          `json:"first_name"`
	AccountType    string          `json:"account_type"`
	LinkedAccounts []LinkedAccount `json:"linked_accounts"`
}
