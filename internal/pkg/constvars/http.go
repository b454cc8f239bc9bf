package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"

	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	AuthorizationBearerPrefix = "Bearer "
)

const (
	URLParamPatientID     = "patientID"
	URLParamAppointmentID = "appointmentID"
	URLParamDoctorID      = "doctorID"
	URLParamMobile        = "mobile"
	URLParamDate          = "date"
	URLParamStatus        = "status"

	QueryParamQuery     = "query"
	QueryParamStartDate = "startDate"
	QueryParamEndDate   = "endDate"
	QueryParamDoctorID  = "doctorId"
	QueryParamDate      = "date"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusRequestTimeout  = 408
	StatusConflict        = 409
	StatusGone            = 410
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)
