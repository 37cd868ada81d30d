package dto

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	NewPass     string `json:"newPass" binding:"required"`
	ConfirmPass string `json:"confirmPass" binding:"required"`
}

type CaptchaRequest struct {
	Token  string `json:"token" binding:"required"`
	Action string `json:"action"`
}

type AssessmentResult struct {
	Score   float32
	Action  string
	Reasons []string
}
