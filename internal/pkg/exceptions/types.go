package exceptions

import (
	"fmt"

	"clinicportal-service/internal/pkg/constvars"
)

var (
	// Request parsing and validation.
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomErrorWithKind(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomErrorWithKind(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomErrorWithKind(err, constvars.StatusGatewayTimeout, KindTransport, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Clinic backend transport.
	ErrBuildHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomErrorWithKind(err, constvars.StatusBadGateway, KindTransport, constvars.ErrClientClinicBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrBackendStatus = func(statusCode int) *CustomError {
		return BuildNewCustomErrorWithKind(nil, constvars.StatusBadGateway, KindTransport, constvars.ErrClientClinicBackendUnavailable, fmt.Sprintf(constvars.ErrDevBackendStatus, statusCode))
	}
	ErrSessionExpired = func() *CustomError {
		return BuildNewCustomErrorWithKind(nil, constvars.StatusUnauthorized, KindSessionExpired, constvars.ErrClientSessionExpired, constvars.ErrDevSessionExpired)
	}

	// Normalized envelope handling.
	ErrBackendRejected = func(clientMessage, resource string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomErrorWithKind(nil, constvars.StatusBadRequest, KindValidation, clientMessage, fmt.Sprintf(constvars.ErrDevBackendRejected, resource))
	}
	ErrDecodeEnvelopePayload = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeEnvelopePayload, resource))
	}
	ErrResourceNotFound = func(resource string) *CustomError {
		return BuildNewCustomErrorWithKind(nil, constvars.StatusNotFound, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevResourceNotFound, resource))
	}

	// Auth and sessions.
	ErrOTPRejected = func(clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientInvalidOTP
		}
		return BuildNewCustomErrorWithKind(nil, constvars.StatusBadRequest, KindValidation, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomErrorWithKind(err, constvars.StatusUnauthorized, KindSessionExpired, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionNotFound = func() *CustomError {
		return BuildNewCustomErrorWithKind(nil, constvars.StatusUnauthorized, KindSessionExpired, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionNotFound)
	}

	// Redis.
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
)
