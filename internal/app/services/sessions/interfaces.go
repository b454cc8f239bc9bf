package sessions

import (
	"context"
	"time"

	"clinicportal-service/internal/app/models"
)

// SessionRepository owns the two pieces of auth state the portal keeps: the
// session entry (backend token + cached user record) and the OTP challenge
// marker that tracks the otp_requested state between request and validate.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SetOTPChallenge(ctx context.Context, challengeKey string, ttl time.Duration) error
	HasOTPChallenge(ctx context.Context, challengeKey string) (bool, error)
	ClearOTPChallenge(ctx context.Context, challengeKey string) error
}
