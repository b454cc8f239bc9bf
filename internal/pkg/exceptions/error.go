package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"clinicportal-service/internal/pkg/constvars"
)

// ErrorKind classifies a failure so callers can decide what to do with it:
// validation failures are surfaced to the user, an expired session forces a
// redirect to the login entry point, transport failures may be absorbed by a
// fixture fallback on read paths.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindSessionExpired
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSessionExpired:
		return "session_expired"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	Kind          ErrorKind  `json:"-"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Redirect      string     `json:"redirect,omitempty"`
	Locations     []Location `json:"-"`

	cause error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) > 0 {
		loc := e.Locations[0]
		return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
	}
	return e.DevMessage
}

// Unwrap exposes the wrapped cause so errors.Is can see through the chain,
// for example a context.DeadlineExceeded under a transport error.
func (e *CustomError) Unwrap() error {
	return e.cause
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, statusCode, KindUnknown, clientMessage, devMessage)
}

func BuildNewCustomErrorWithKind(err error, statusCode int, kind ErrorKind, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, statusCode, kind, clientMessage, devMessage)
}

func buildCustomError(err error, statusCode int, kind ErrorKind, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	customErr := &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		cause:         err,
	}
	if kind == KindSessionExpired {
		customErr.Redirect = constvars.LoginRedirectPath
	}
	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}

// KindOf extracts the classification from any error chain. Plain errors are
// reported as KindUnknown.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindUnknown
}

func IsSessionExpired(err error) bool {
	return KindOf(err) == KindSessionExpired
}

func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}
