package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientSessionExpired                = "Your session has expired, please log in again"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
	ErrClientClinicBackendUnavailable      = "Clinic service is temporarily unavailable, please try again later"
	ErrClientInvalidOTP                    = "Invalid OTP. Please try again."
	ErrClientOTPNotRequested               = "No OTP has been requested for this number, please request one first"
	ErrClientNetworkError                  = "Network error. Please check your connection and try again."
	ErrClientPatientNotFound               = "Patient could not be found"
	ErrClientAppointmentNotFound           = "Appointment could not be found"
	ErrClientSlotTaken                     = "The selected time slot is no longer available"
)

// Developer-facing messages, never rendered to clients in production.
const (
	ErrDevCannotParseJSON           = "Cannot parse JSON request body"
	ErrDevCannotMarshalJSON         = "Cannot marshal payload into JSON"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevBuildHTTPRequest          = "Failed to build HTTP request to clinic backend"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to clinic backend"
	ErrDevBackendStatus             = "Clinic backend responded with status %d"
	ErrDevBackendRejected           = "Clinic backend rejected the %s request"
	ErrDevDecodeEnvelopePayload     = "Failed to decode %s payload from normalized envelope"
	ErrDevSessionExpired            = "Received 401 from a non-auth clinic backend endpoint"
	ErrDevSessionNotFound           = "Session not found in store"
	ErrDevAuthTokenMissing          = "Authorization token is missing from the request"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevOTPChallengeMissing       = "OTP challenge marker not found"
	ErrDevValidateOTPMalformed      = "validateOtp succeeded but token or user record is missing"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded while processing the request"
	ErrDevRedisSet                  = "Failed to store value in Redis"
	ErrDevRedisGet                  = "Failed to fetch value from Redis"
	ErrDevRedisDelete               = "Failed to delete value from Redis"
	ErrDevResourceNotFound          = "%s not found"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alpha":        "must contain only letters",
	"alphanum":     "must contain only alphanumeric characters",
	"numeric":      "must be a number",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"uuid":         "must be a valid UUID",
	"datetime":     "must be a valid date",
	"phone_number": "must be a valid phone number in international format",
	"user_type":    "must be one of [PATIENT DOCTOR ADMIN]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}
