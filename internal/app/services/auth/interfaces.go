package auth

import (
	"context"

	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
)

// AuthUsecase is the session store for the OTP login flow. States move
// anonymous -> otp_requested -> authenticated; logout and expiry fall back
// to anonymous. OTP mismatches are reported as failure results, never as
// errors.
type AuthUsecase interface {
	RequestOTP(ctx context.Context, request *requests.RequestOTP) (*responses.OTPResult, error)
	ValidateOTP(ctx context.Context, request *requests.ValidateOTP) (*responses.LoginResult, error)
	ResendOTP(ctx context.Context, request *requests.RequestOTP) (*responses.OTPResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*responses.UserProfile, error)
}
