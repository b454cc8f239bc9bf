package utils

import (
	"context"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok {
		return sessionID
	}
	return ""
}

// GetBackendToken returns the clinic backend bearer token for the current
// session, or "" for anonymous requests.
func GetBackendToken(ctx context.Context) string {
	if token, ok := ctx.Value(constvars.CONTEXT_BACKEND_TOKEN_KEY).(string); ok {
		return token
	}
	return ""
}

func GetSessionUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(constvars.CONTEXT_USER_KEY).(*models.User); ok {
		return user
	}
	return nil
}
