package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"clinicportal-service/internal/app/services/auth"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase auth.AuthUsecase
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase auth.AuthUsecase) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:         logger,
			AuthUsecase: authUsecase,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

func (ctrl *AuthController) RequestOTP(w http.ResponseWriter, r *http.Request) {
	ctrl.sendOTP(w, r, ctrl.AuthUsecase.RequestOTP)
}

func (ctrl *AuthController) ResendOTP(w http.ResponseWriter, r *http.Request) {
	ctrl.sendOTP(w, r, ctrl.AuthUsecase.ResendOTP)
}

func (ctrl *AuthController) sendOTP(w http.ResponseWriter, r *http.Request, send func(context.Context, *requests.RequestOTP) (*responses.OTPResult, error)) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.RequestOTP)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeRequestOTP(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := send(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to request OTP",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMobileKey, request.Mobile),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !result.Success {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBackendRejected(result.Message, constvars.ResourceUser))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result.Message, nil)
}

func (ctrl *AuthController) ValidateOTP(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.ValidateOTP)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeValidateOTP(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.ValidateOTP(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to validate OTP",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMobileKey, request.Mobile),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !result.Success {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrOTPRejected(result.Message))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result.Message, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := utils.GetSessionID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, sessionID); err != nil {
		ctrl.Log.Error("Failed to log out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) CurrentUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := utils.GetSessionID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, err := ctrl.AuthUsecase.CurrentUser(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch current user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileFetched, profile)
}
