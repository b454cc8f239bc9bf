package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_BACKEND_TOKEN_KEY        ContextKey = "backend_token"
	CONTEXT_USER_KEY                 ContextKey = "session_user"
)

// Redis key prefixes. A session entry is the server-side analogue of the
// browser's single stored token slot; the OTP challenge marker tracks the
// otp_requested state between request and validate.
const (
	SessionKeyPrefix      = "session:"
	OTPChallengeKeyPrefix = "otp_challenge:"
)

// Clinic backend endpoint groups. A 401 from inside the auth group is an
// ordinary validation failure (wrong OTP), never a session expiry.
const (
	BackendAuthGroupPrefix = "/auth/"

	BackendAuthLoginPath       = "/auth/login"
	BackendAuthValidateOTPPath = "/auth/validateOtp"
	BackendAuthResendOTPPath   = "/auth/resendOtp"

	BackendPatientGroupPrefix     = "/patient"
	BackendAppointmentGroupPrefix = "/appointment"
	BackendDashboardStatsPath     = "/dashboard/stats"
)

// Login entry point the browser is redirected to once a session expires.
const LoginRedirectPath = "/login"

const (
	UserTypePatient = "PATIENT"
	UserTypeDoctor  = "DOCTOR"
	UserTypeAdmin   = "ADMIN"
)

const (
	AppointmentStatusScheduled = "SCHEDULED"
	AppointmentStatusCompleted = "COMPLETED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusNoShow    = "NO_SHOW"
)

// Envelope status markers used by the legacy string-enum backend shape.
const (
	EnvelopeStatusSuccess = "SUCCESS"
	EnvelopeStatusFailure = "FAILURE"
)

// Placeholders for the derived user profile when name fields are absent.
const (
	ProfileDisplayNamePlaceholder = "User"
	ProfileInitialsPlaceholder    = "U"
)

// Name shown for appointments synthesized into the fixture store when the
// patient is not part of the sample dataset.
const FixturePatientNamePlaceholder = "New Patient"

const (
	ResourcePatient     = "Patient"
	ResourceAppointment = "Appointment"
	ResourceDashboard   = "Dashboard"
	ResourceUser        = "User"
	ResourceSession     = "Session"
)

const DateOnlyFormat = "2006-01-02"
