package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingSessionIDKey        = "session_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingMobileKey           = "mobile"
	LoggingUserTypeKey         = "user_type"
	LoggingUserIDKey           = "user_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingPatientCountKey     = "patient_count"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingResourceKey         = "resource"
	LoggingFixtureKey          = "fixture"
)
