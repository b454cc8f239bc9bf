package auth

import (
	"context"
	"fmt"
	"time"

	"clinicportal-service/internal/app/config"
	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/backend"
	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	RestClient        backend.RestClient
	SessionRepository sessions.SessionRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	restClient backend.RestClient,
	sessionRepository sessions.SessionRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		RestClient:        restClient,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) RequestOTP(ctx context.Context, request *requests.RequestOTP) (*responses.OTPResult, error) {
	return uc.sendOTP(ctx, constvars.BackendAuthLoginPath, request, constvars.OTPRequestedSuccess)
}

// ResendOTP is scoped to an existing challenge; a resend for a number that
// never requested one is logged but still forwarded, the backend stays the
// authority on whether a challenge exists.
func (uc *authUsecase) ResendOTP(ctx context.Context, request *requests.RequestOTP) (*responses.OTPResult, error) {
	exists, err := uc.SessionRepository.HasOTPChallenge(ctx, challengeKey(request.UserType, request.ISOCode, request.Mobile))
	if err != nil {
		return nil, err
	}
	if !exists {
		uc.Log.Warn("authUsecase.ResendOTP without active challenge",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingMobileKey, request.Mobile),
		)
	}
	return uc.sendOTP(ctx, constvars.BackendAuthResendOTPPath, request, constvars.OTPResentSuccess)
}

func (uc *authUsecase) sendOTP(ctx context.Context, path string, request *requests.RequestOTP, defaultMessage string) (*responses.OTPResult, error) {
	requestID := utils.GetRequestID(ctx)

	body := &requests.BackendOTP{
		Mobile:       request.Mobile,
		ISOCode:      request.ISOCode,
		UserType:     request.UserType,
		LoginWithPin: false,
	}
	envelope, err := uc.RestClient.Post(ctx, path, "", body)
	if err != nil {
		return nil, err
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = constvars.ErrClientCannotProcessRequest
		}
		return &responses.OTPResult{Success: false, Message: message}, nil
	}

	err = uc.SessionRepository.SetOTPChallenge(ctx,
		challengeKey(request.UserType, request.ISOCode, request.Mobile),
		time.Duration(uc.InternalConfig.Session.OTPChallengeExpiredTimeInMinutes)*time.Minute,
	)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase OTP challenge issued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileKey, request.Mobile),
		zap.String(constvars.LoggingUserTypeKey, request.UserType),
	)

	message := envelope.Message
	if message == "" {
		message = defaultMessage
	}
	return &responses.OTPResult{Success: true, Message: message}, nil
}

func (uc *authUsecase) ValidateOTP(ctx context.Context, request *requests.ValidateOTP) (*responses.LoginResult, error) {
	requestID := utils.GetRequestID(ctx)

	body := &requests.BackendOTP{
		Mobile:       request.Mobile,
		ISOCode:      request.ISOCode,
		UserType:     request.UserType,
		OTP:          request.OTP,
		LoginWithPin: false,
	}
	envelope, err := uc.RestClient.Post(ctx, constvars.BackendAuthValidateOTPPath, "", body)
	if err != nil {
		// Transport failures are an expected, recoverable condition on the
		// login path: report a failure result with the generic network
		// message instead of raising. The challenge marker stays put so the
		// user can retry.
		if exceptions.IsTransport(err) {
			uc.Log.Warn("authUsecase.ValidateOTP backend unreachable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return &responses.LoginResult{Success: false, Message: constvars.ErrClientNetworkError}, nil
		}
		return nil, err
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = constvars.ErrClientInvalidOTP
		}
		uc.Log.Info("authUsecase.ValidateOTP rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMobileKey, request.Mobile),
		)
		return &responses.LoginResult{Success: false, Message: message}, nil
	}

	token, user, err := decodeLoginPayload(envelope.Data)
	if err != nil {
		uc.Log.Error("authUsecase.ValidateOTP malformed success payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.LoginResult{Success: false, Message: constvars.ErrClientSomethingWrongWithApplication}, nil
	}

	sessionTTL := time.Duration(uc.InternalConfig.Session.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Token:     token,
		User:      user,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := uc.SessionRepository.CreateSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}

	// The challenge is consumed: state moves from otp_requested to
	// authenticated.
	if err := uc.SessionRepository.ClearOTPChallenge(ctx, challengeKey(request.UserType, request.ISOCode, request.Mobile)); err != nil {
		uc.Log.Warn("authUsecase.ValidateOTP could not clear challenge marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	portalToken, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.ValidateOTP session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, user.UUID),
	)

	message := envelope.Message
	if message == "" {
		message = constvars.LoginSuccess
	}
	return &responses.LoginResult{
		Success: true,
		Message: message,
		Token:   portalToken,
		User:    utils.BuildUserProfile(user),
	}, nil
}

// Logout clears local session state; it never depends on a backend call
// succeeding.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.SessionRepository.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	uc.Log.Info("authUsecase.Logout session destroyed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context, sessionID string) (*responses.UserProfile, error) {
	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.User == nil {
		return nil, exceptions.ErrSessionNotFound()
	}
	return utils.BuildUserProfile(session.User), nil
}

// decodeLoginPayload accepts both success payload shapes the backend has
// shipped: the user record nested under "user", or flattened beside the
// token.
func decodeLoginPayload(data json.RawMessage) (string, *models.User, error) {
	var nested struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return "", nil, err
	}
	if nested.Token == "" {
		return "", nil, fmt.Errorf(constvars.ErrDevValidateOTPMalformed)
	}
	if nested.User != nil {
		return nested.Token, nested.User, nil
	}

	flat := new(models.User)
	if err := json.Unmarshal(data, flat); err != nil {
		return "", nil, err
	}
	if flat.UUID == "" && flat.Mobile == "" {
		return "", nil, fmt.Errorf(constvars.ErrDevValidateOTPMalformed)
	}
	return nested.Token, flat, nil
}

func challengeKey(userType, isoCode, mobile string) string {
	return fmt.Sprintf("%s:%s:%s", userType, isoCode, mobile)
}
