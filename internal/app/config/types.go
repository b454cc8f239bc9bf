package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	InternalConfig struct {
		App           App
		ClinicBackend ClinicBackend
		JWT           JWT
		Session       Session
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		RequestTimeoutInSeconds   int
		OTPMaxRequestsPerMinute   int
		OTPBlockTimeInMinutes     int
	}

	// ClinicBackend points at the remote user-service this portal wraps.
	// FixtureFallback switches the development-only sample data sources on;
	// it must stay off in production deployments.
	ClinicBackend struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		FixtureFallback         bool
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Session struct {
		LoginSessionExpiredTimeInHours   int
		OTPChallengeExpiredTimeInMinutes int
	}
)
