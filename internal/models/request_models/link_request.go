package request_models

type ValidateOtpRequest struct {
	Otp string `json:"otp" binding:"required,len=6,numeric"`
}
