package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicportal-service/internal/app/config"
	"clinicportal-service/internal/app/delivery/http/controllers"
	"clinicportal-service/internal/app/delivery/http/middlewares"
	"clinicportal-service/internal/app/delivery/http/routers"
	"clinicportal-service/internal/app/drivers/database"
	"clinicportal-service/internal/app/drivers/logger"
	"clinicportal-service/internal/app/services/appointments"
	"clinicportal-service/internal/app/services/auth"
	"clinicportal-service/internal/app/services/backend"
	"clinicportal-service/internal/app/services/dashboard"
	"clinicportal-service/internal/app/services/patients"
	"clinicportal-service/internal/app/services/sessions"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Sessions
	sessionRepository := sessions.NewRedisSessionRepository(bootstrap.Redis)

	// Clinic backend client
	httpClient := &http.Client{
		Timeout: time.Duration(bootstrap.InternalConfig.ClinicBackend.RequestTimeoutInSeconds) * time.Second,
	}
	restClient := backend.NewRestClient(bootstrap.InternalConfig.ClinicBackend.BaseUrl, httpClient, bootstrap.Logger)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:               bootstrap.Logger,
		SessionRepository: sessionRepository,
		InternalConfig:    bootstrap.InternalConfig,
	}

	fixtureFallback := bootstrap.InternalConfig.ClinicBackend.FixtureFallback

	// Auth
	authUsecase := auth.NewAuthUsecase(restClient, sessionRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Patients
	patientFixture := patients.NewPatientFixtureSource()
	patientUsecase := patients.NewPatientUsecase(
		patients.NewPatientBackendSource(restClient),
		patientFixture,
		sessionRepository,
		fixtureFallback,
		bootstrap.Logger,
	)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Appointments
	appointmentFixture := appointments.NewAppointmentFixtureSource()
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointments.NewAppointmentBackendSource(restClient),
		appointmentFixture,
		sessionRepository,
		fixtureFallback,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(
		restClient,
		patientFixture,
		appointmentFixture,
		sessionRepository,
		fixtureFallback,
		bootstrap.Logger,
	)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		appointmentController,
		dashboardController,
	)
}
