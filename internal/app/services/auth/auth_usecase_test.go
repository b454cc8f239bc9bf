package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicportal-service/internal/app/config"
	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/backend"
	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
		Session: config.Session{
			LoginSessionExpiredTimeInHours:   24,
			OTPChallengeExpiredTimeInMinutes: 5,
		},
	}
}

func newTestAuthUsecase(t *testing.T, backendHandler http.Handler) (AuthUsecase, sessions.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	server := httptest.NewServer(backendHandler)
	t.Cleanup(server.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionRepository := sessions.NewRedisSessionRepository(client)

	restClient := backend.NewRestClient(server.URL, server.Client(), zap.NewNop())
	usecase := NewAuthUsecase(restClient, sessionRepository, testInternalConfig(), zap.NewNop())
	return usecase, sessionRepository, mr
}

func otpRequest() *requests.RequestOTP {
	return &requests.RequestOTP{
		Mobile:   "+15550100001",
		ISOCode:  "US",
		UserType: constvars.UserTypePatient,
	}
}

func TestAuthUsecase_RequestOTP(t *testing.T) {
	t.Run("successful request marks the challenge", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.BackendAuthLoginPath, r.URL.Path)
			w.Write([]byte(`{"status":true,"message":"OTP sent"}`))
		})
		usecase, sessionRepository, _ := newTestAuthUsecase(t, handler)

		result, err := usecase.RequestOTP(context.Background(), otpRequest())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "OTP sent", result.Message)

		exists, err := sessionRepository.HasOTPChallenge(context.Background(), "PATIENT:US:+15550100001")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("backend rejection yields failure result and no challenge", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":false,"message":"unknown mobile number"}`))
		})
		usecase, sessionRepository, _ := newTestAuthUsecase(t, handler)

		result, err := usecase.RequestOTP(context.Background(), otpRequest())
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "unknown mobile number", result.Message)

		exists, err := sessionRepository.HasOTPChallenge(context.Background(), "PATIENT:US:+15550100001")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestAuthUsecase_ValidateOTP(t *testing.T) {
	validateRequest := &requests.ValidateOTP{
		Mobile:   "+15550100001",
		ISOCode:  "US",
		UserType: constvars.UserTypePatient,
		OTP:      "123456",
	}

	t.Run("valid OTP creates a session and clears the challenge", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.BackendAuthValidateOTPPath, r.URL.Path)
			w.Write([]byte(`{"status":true,"message":"Login successful","data":{"token":"backend-tok","user":{"uuid":"user-1","firstName":"John","lastName":"Doe","userType":"PATIENT"}}}`))
		})
		usecase, sessionRepository, _ := newTestAuthUsecase(t, handler)

		ctx := context.Background()
		require.NoError(t, sessionRepository.SetOTPChallenge(ctx, "PATIENT:US:+15550100001", 0))

		result, err := usecase.ValidateOTP(ctx, validateRequest)
		require.NoError(t, err)
		require.True(t, result.Success)
		require.NotNil(t, result.User)
		assert.Equal(t, "John Doe", result.User.DisplayName)
		assert.Equal(t, "JD", result.User.Initials)
		assert.Equal(t, "patient", result.User.Role)

		sessionID, err := utils.ParseJWT(result.Token, "test-secret")
		require.NoError(t, err)

		session, err := sessionRepository.GetSession(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "backend-tok", session.Token)

		exists, err := sessionRepository.HasOTPChallenge(ctx, "PATIENT:US:+15550100001")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("rejected OTP returns failure result and keeps state", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":false,"message":"Invalid OTP. Please try again."}`))
		})
		usecase, sessionRepository, _ := newTestAuthUsecase(t, handler)

		ctx := context.Background()
		require.NoError(t, sessionRepository.SetOTPChallenge(ctx, "PATIENT:US:+15550100001", 0))

		result, err := usecase.ValidateOTP(ctx, validateRequest)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, constvars.ErrClientInvalidOTP, result.Message)
		assert.Empty(t, result.Token)

		exists, err := sessionRepository.HasOTPChallenge(ctx, "PATIENT:US:+15550100001")
		require.NoError(t, err)
		assert.True(t, exists, "a failed attempt must not consume the challenge")
	})

	t.Run("unreachable backend returns the network error result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		sessionRepository := sessions.NewRedisSessionRepository(client)
		restClient := backend.NewRestClient(server.URL, nil, zap.NewNop())
		usecase := NewAuthUsecase(restClient, sessionRepository, testInternalConfig(), zap.NewNop())

		result, err := usecase.ValidateOTP(context.Background(), validateRequest)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, constvars.ErrClientNetworkError, result.Message)
	})

	t.Run("flattened success payload is accepted", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":true,"data":{"token":"backend-tok","uuid":"user-2","firstName":"Jane","lastName":"Smith","userType":"DOCTOR"}}`))
		})
		usecase, _, _ := newTestAuthUsecase(t, handler)

		result, err := usecase.ValidateOTP(context.Background(), validateRequest)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "Jane Smith", result.User.DisplayName)
		assert.Equal(t, "doctor", result.User.Role)
	})
}

func TestAuthUsecase_LogoutAndCurrentUser(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true}`))
	})
	usecase, sessionRepository, _ := newTestAuthUsecase(t, handler)
	ctx := context.Background()

	session := &models.Session{
		SessionID: "sess-test",
		Token:     "backend-tok",
		User: &models.User{
			UUID:      "user-1",
			FirstName: "John",
			LastName:  "Doe",
			UserType:  constvars.UserTypePatient,
		},
	}
	require.NoError(t, sessionRepository.CreateSession(ctx, session, 0))

	profile, err := usecase.CurrentUser(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", profile.DisplayName)

	require.NoError(t, usecase.Logout(ctx, session.SessionID))

	_, err = usecase.CurrentUser(ctx, session.SessionID)
	require.Error(t, err)
}
