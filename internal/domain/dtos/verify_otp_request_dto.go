package dtos

// VerifyOTPRequest submits the code typed by the user. An empty code is not a
// validation failure, it simply does not match.
type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// ResendStatusResponse describes the resend cooldown of a session.
type ResendStatusResponse struct {
	Pending   bool `json:"pending"`
	CanResend bool `json:"canResend"`
	ResendIn  int  `json:"resendIn"`
}
