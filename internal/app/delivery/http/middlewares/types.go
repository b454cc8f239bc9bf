package middlewares

import (
	"clinicportal-service/internal/app/config"
	"clinicportal-service/internal/app/services/sessions"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository sessions.SessionRepository
	InternalConfig    *config.InternalConfig
}
