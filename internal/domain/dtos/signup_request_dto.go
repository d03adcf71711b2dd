package dtos

// SignupRequest starts a signup. Every field is required; the email is only
// compared byte for byte against existing accounts.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse carries the issued code back to the caller, which stands in
// for delivery.
type SignupResponse struct {
	Message  string `json:"message"`
	OTP      int    `json:"otp"`
	ResendIn int    `json:"resendIn"`
}
