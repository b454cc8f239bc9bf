package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRestClient_UnauthorizedClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid OTP"}`))
	}))
	defer server.Close()

	client := NewRestClient(server.URL, server.Client(), zap.NewNop())

	t.Run("401 outside the auth group is a session expiry", func(t *testing.T) {
		_, err := client.Get(context.Background(), "/patient/get/all", "stale-token")

		require.Error(t, err)
		assert.True(t, exceptions.IsSessionExpired(err))
	})

	t.Run("401 inside the auth group stays a failure envelope", func(t *testing.T) {
		envelope, err := client.Post(context.Background(), constvars.BackendAuthValidateOTPPath, "", map[string]string{"otp": "0000"})

		require.NoError(t, err)
		assert.False(t, envelope.Success)
		assert.Equal(t, "Invalid OTP", envelope.Message)
	})
}

func TestRestClient_ServerErrorIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRestClient(server.URL, server.Client(), zap.NewNop())

	_, err := client.Get(context.Background(), "/patient/get/all", "token")

	require.Error(t, err)
	assert.True(t, exceptions.IsTransport(err))
	assert.False(t, exceptions.IsSessionExpired(err))
}

func TestRestClient_ConnectionFailureIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewRestClient(server.URL, nil, zap.NewNop())

	_, err := client.Get(context.Background(), "/dashboard/stats", "")

	require.Error(t, err)
	assert.True(t, exceptions.IsTransport(err))
}

func TestRestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(constvars.HeaderAuthorization)
		w.Write([]byte(`{"status":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewRestClient(server.URL, server.Client(), zap.NewNop())

	envelope, err := client.Get(context.Background(), "/patient/get/all", "backend-token")

	require.NoError(t, err)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Bearer backend-token", gotAuth)
}

func TestRestClient_AnonymousRequestHasNoAuthHeader(t *testing.T) {
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header[constvars.HeaderAuthorization]
		w.Write([]byte(`{"status":true}`))
	}))
	defer server.Close()

	client := NewRestClient(server.URL, server.Client(), zap.NewNop())

	_, err := client.Post(context.Background(), constvars.BackendAuthLoginPath, "", map[string]string{"mobile": "+15550100001"})

	require.NoError(t, err)
	assert.False(t, sawHeader)
}
