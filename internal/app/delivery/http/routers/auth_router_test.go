package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicportal-service/internal/app/config"
	"clinicportal-service/internal/app/delivery/http/controllers"
	"clinicportal-service/internal/app/delivery/http/middlewares"
	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
	"clinicportal-service/internal/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RequestOTP(ctx context.Context, request *requests.RequestOTP) (*responses.OTPResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OTPResult), args.Error(1)
}

func (m *MockAuthUsecase) ValidateOTP(ctx context.Context, request *requests.ValidateOTP) (*responses.LoginResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginResult), args.Error(1)
}

func (m *MockAuthUsecase) ResendOTP(ctx context.Context, request *requests.RequestOTP) (*responses.OTPResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OTPResult), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context, sessionID string) (*responses.UserProfile, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func TestAuthRouter(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			OTPMaxRequestsPerMinute: 100,
			OTPBlockTimeInMinutes:   1,
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
	}

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionRepository := sessions.NewRedisSessionRepository(redisClient)

	mockAuthUsecase := new(MockAuthUsecase)
	authController := controllers.NewAuthController(logger, mockAuthUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:               logger,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}

	router := chi.NewRouter()
	attachAuthRoutes(router, internalConfig, middlewareInstance, authController)

	postJSON := func(path string, body interface{}) *httptest.ResponseRecorder {
		jsonBody, _ := json.Marshal(body)
		req := httptest.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("RequestOTP with Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/request-otp", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
		mockAuthUsecase.AssertNotCalled(t, "RequestOTP")
	})

	t.Run("RequestOTP with Missing Mobile", func(t *testing.T) {
		rr := postJSON("/request-otp", map[string]interface{}{
			"isoCode":  "US",
			"userType": "PATIENT",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for missing mobile")
		mockAuthUsecase.AssertNotCalled(t, "RequestOTP")
	})

	t.Run("RequestOTP Backend Rejection", func(t *testing.T) {
		mockAuthUsecase.On("RequestOTP", mock.Anything, mock.AnythingOfType("*requests.RequestOTP")).
			Return(&responses.OTPResult{Success: false, Message: "User not registered"}, nil).Once()

		rr := postJSON("/request-otp", requests.RequestOTP{
			Mobile:   "+15550100001",
			ISOCode:  "US",
			UserType: "PATIENT",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request when backend rejects the OTP request")
		assert.Contains(t, rr.Body.String(), "User not registered")
	})

	t.Run("RequestOTP Success", func(t *testing.T) {
		mockAuthUsecase.On("RequestOTP", mock.Anything, mock.AnythingOfType("*requests.RequestOTP")).
			Return(&responses.OTPResult{Success: true, Message: "OTP sent"}, nil).Once()

		rr := postJSON("/request-otp", requests.RequestOTP{
			Mobile:   "+15550100001",
			ISOCode:  "US",
			UserType: "PATIENT",
		})

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a successful OTP request")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("ResendOTP Success", func(t *testing.T) {
		mockAuthUsecase.On("ResendOTP", mock.Anything, mock.AnythingOfType("*requests.RequestOTP")).
			Return(&responses.OTPResult{Success: true, Message: "OTP resent"}, nil).Once()

		rr := postJSON("/resend-otp", requests.RequestOTP{
			Mobile:   "+15550100001",
			ISOCode:  "US",
			UserType: "PATIENT",
		})

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a successful OTP resend")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("ValidateOTP Rejected Code", func(t *testing.T) {
		mockAuthUsecase.On("ValidateOTP", mock.Anything, mock.AnythingOfType("*requests.ValidateOTP")).
			Return(&responses.LoginResult{Success: false, Message: "Invalid verification code"}, nil).Once()

		rr := postJSON("/validate-otp", requests.ValidateOTP{
			Mobile:   "+15550100001",
			ISOCode:  "US",
			OTP:      "000000",
			UserType: "PATIENT",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for a rejected OTP")
		assert.Contains(t, rr.Body.String(), "Invalid verification code")
	})

	t.Run("ValidateOTP Success", func(t *testing.T) {
		mockAuthUsecase.On("ValidateOTP", mock.Anything, mock.AnythingOfType("*requests.ValidateOTP")).
			Return(&responses.LoginResult{
				Success: true,
				Message: "Login successful",
				Token:   "portal-token",
				User:    &responses.UserProfile{DisplayName: "John Doe", Initials: "JD", Role: "patient"},
			}, nil).Once()

		rr := postJSON("/validate-otp", requests.ValidateOTP{
			Mobile:   "+15550100001",
			ISOCode:  "US",
			OTP:      "123456",
			UserType: "PATIENT",
		})

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a valid OTP")
		assert.Contains(t, rr.Body.String(), "portal-token")
		assert.Contains(t, rr.Body.String(), "John Doe")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("CurrentUser without Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a bearer token")
		mockAuthUsecase.AssertNotCalled(t, "CurrentUser")
	})

	t.Run("CurrentUser with Unknown Session", func(t *testing.T) {
		token, err := utils.GenerateJWT("missing-session", internalConfig.JWT.Secret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized when the session is gone")
		mockAuthUsecase.AssertNotCalled(t, "CurrentUser")
	})

	t.Run("CurrentUser with Valid Session", func(t *testing.T) {
		session := &models.Session{
			SessionID: "session-1",
			Token:     "backend-token",
			User:      &models.User{UUID: "user-1", FirstName: "John", LastName: "Doe", UserType: "PATIENT"},
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, sessionRepository.CreateSession(context.Background(), session, time.Hour))

		token, err := utils.GenerateJWT(session.SessionID, internalConfig.JWT.Secret, time.Hour)
		require.NoError(t, err)

		mockAuthUsecase.On("CurrentUser", mock.Anything, session.SessionID).
			Return(&responses.UserProfile{UUID: "user-1", DisplayName: "John Doe", Initials: "JD", Role: "patient"}, nil).Once()

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a valid session")
		assert.Contains(t, rr.Body.String(), "John Doe")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Logout with Valid Session", func(t *testing.T) {
		session := &models.Session{
			SessionID: "session-2",
			Token:     "backend-token",
			User:      &models.User{UUID: "user-2"},
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, sessionRepository.CreateSession(context.Background(), session, time.Hour))

		token, err := utils.GenerateJWT(session.SessionID, internalConfig.JWT.Secret, time.Hour)
		require.NoError(t, err)

		mockAuthUsecase.On("Logout", mock.Anything, session.SessionID).Return(nil).Once()

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for logout")
		mockAuthUsecase.AssertExpectations(t)
	})
}
