package config

import (
	"clinicportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			OTPMaxRequestsPerMinute:  utils.GetEnvInt("APP_OTP_MAX_REQUESTS_PER_MINUTE", 5),
			OTPBlockTimeInMinutes:    utils.GetEnvInt("APP_OTP_BLOCK_TIME_IN_MINUTES", 10),
		},
		ClinicBackend: ClinicBackend{
			BaseUrl:                 utils.GetEnvString("CLINIC_BACKEND_BASE_URL", "http://localhost:9090/user-service"),
			RequestTimeoutInSeconds: utils.GetEnvInt("CLINIC_BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			FixtureFallback:         utils.GetEnvBool("CLINIC_BACKEND_FIXTURE_FALLBACK", true),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: Session{
			LoginSessionExpiredTimeInHours:   utils.GetEnvInt("SESSION_LOGIN_EXPIRED_TIME_IN_HOURS", 24),
			OTPChallengeExpiredTimeInMinutes: utils.GetEnvInt("SESSION_OTP_CHALLENGE_EXPIRED_TIME_IN_MINUTES", 5),
		},
	}
}
