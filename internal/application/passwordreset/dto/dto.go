package dto

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SendCredentialsRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type SetPasswordRequest struct {
	Username    string `json:"username"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}
