package dashboard

import (
	"context"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/appointments"
	"clinicportal-service/internal/app/services/backend"
	"clinicportal-service/internal/app/services/patients"
	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/responses"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type dashboardUsecase struct {
	RestClient         backend.RestClient
	PatientFixture     *patients.PatientFixtureSource
	AppointmentFixture *appointments.AppointmentFixtureSource
	SessionRepository  sessions.SessionRepository
	FixtureFallback    bool
	Log                *zap.Logger
}

func NewDashboardUsecase(
	restClient backend.RestClient,
	patientFixture *patients.PatientFixtureSource,
	appointmentFixture *appointments.AppointmentFixtureSource,
	sessionRepository sessions.SessionRepository,
	fixtureFallback bool,
	logger *zap.Logger,
) DashboardUsecase {
	return &dashboardUsecase{
		RestClient:         restClient,
		PatientFixture:     patientFixture,
		AppointmentFixture: appointmentFixture,
		SessionRepository:  sessionRepository,
		FixtureFallback:    fixtureFallback,
		Log:                logger,
	}
}

func (uc *dashboardUsecase) GetDashboardStats(ctx context.Context) (*responses.DashboardStats, error) {
	token := utils.GetBackendToken(ctx)

	stats, err := uc.fetchLiveStats(ctx, token)
	if err != nil {
		if exceptions.IsSessionExpired(err) {
			if sessionID := utils.GetSessionID(ctx); sessionID != "" {
				if deleteErr := uc.SessionRepository.DeleteSession(ctx, sessionID); deleteErr != nil {
					uc.Log.Error("dashboardUsecase session teardown failed",
						zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
						zap.Error(deleteErr),
					)
				}
			}
			return nil, err
		}
		if !uc.FixtureFallback {
			return nil, err
		}
		uc.Log.Warn("dashboardUsecase falling back to fixture stats",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return &responses.DashboardStats{Stats: uc.fixtureStats(), Fixture: true}, nil
	}
	return &responses.DashboardStats{Stats: stats}, nil
}

func (uc *dashboardUsecase) fetchLiveStats(ctx context.Context, token string) (*models.DashboardStats, error) {
	envelope, err := uc.RestClient.Get(ctx, constvars.BackendDashboardStatsPath, token)
	if err != nil {
		return nil, err
	}
	if !envelope.Success && envelope.Recognized {
		return nil, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourceDashboard)
	}

	stats := new(models.DashboardStats)
	if err := json.Unmarshal(envelope.Data, stats); err != nil {
		return nil, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourceDashboard)
	}
	return stats, nil
}

// fixtureStats derives the dashboard counters from the shared sample
// datasets so the numbers stay consistent with what the patient and
// appointment fixture endpoints return.
func (uc *dashboardUsecase) fixtureStats() *models.DashboardStats {
	todayCount, upcoming, completed := uc.AppointmentFixture.Counts()
	return &models.DashboardStats{
		TotalPatients:         uc.PatientFixture.Count(),
		TodaysAppointments:    todayCount,
		UpcomingAppointments:  upcoming,
		CompletedAppointments: completed,
	}
}
