package responses

// OTPResult carries the outcome of an OTP request or resend. A failed
// request is an expected condition reported through Success=false, not an
// error.
type OTPResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResult is the outcome of an OTP validation. On success Token holds
// the portal session token handed to the browser and User the derived
// profile; on failure only Message is set. An OTP mismatch is a recoverable
// failure result, never an error.
type LoginResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *UserProfile `json:"user,omitempty"`
}
