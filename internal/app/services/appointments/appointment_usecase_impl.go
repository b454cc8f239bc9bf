package appointments

import (
	"context"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	Live              AppointmentDataSource
	Fixture           *AppointmentFixtureSource
	SessionRepository sessions.SessionRepository
	FixtureFallback   bool
	Log               *zap.Logger
}

func NewAppointmentUsecase(
	live AppointmentDataSource,
	fixture *AppointmentFixtureSource,
	sessionRepository sessions.SessionRepository,
	fixtureFallback bool,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		Live:              live,
		Fixture:           fixture,
		SessionRepository: sessionRepository,
		FixtureFallback:   fixtureFallback,
		Log:               logger,
	}
}

func (uc *appointmentUsecase) teardownExpiredSession(ctx context.Context, err error) {
	if !exceptions.IsSessionExpired(err) {
		return
	}
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return
	}
	if deleteErr := uc.SessionRepository.DeleteSession(ctx, sessionID); deleteErr != nil {
		uc.Log.Error("appointmentUsecase session teardown failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(deleteErr),
		)
	}
}

func (uc *appointmentUsecase) fallbackErr(ctx context.Context, operation string, err error) (bool, error) {
	if exceptions.IsSessionExpired(err) {
		uc.teardownExpiredSession(ctx, err)
		return false, err
	}
	if !uc.FixtureFallback {
		return false, err
	}
	uc.Log.Warn("appointmentUsecase falling back to fixture data",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEndpointKey, operation),
		zap.Error(err),
	)
	return true, nil
}

// listWithFallback runs a live collection read and swallows recoverable
// failures into the corresponding fixture read.
func (uc *appointmentUsecase) listWithFallback(
	ctx context.Context,
	operation string,
	live func(token string) ([]models.Appointment, error),
	fixture func(token string) ([]models.Appointment, error),
) (*responses.AppointmentList, error) {
	token := utils.GetBackendToken(ctx)

	appointments, err := live(token)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, operation, err)
		if !useFixture {
			return nil, err
		}
		appointments, _ = fixture(token)
		return &responses.AppointmentList{Appointments: appointments, Fixture: true}, nil
	}

	uc.Log.Debug("appointmentUsecase list read",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEndpointKey, operation),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return &responses.AppointmentList{Appointments: appointments}, nil
}

func (uc *appointmentUsecase) GetAllAppointments(ctx context.Context) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetAll",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetAll(ctx, token) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetAll(ctx, token) },
	)
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error) {
	token := utils.GetBackendToken(ctx)

	appointment, err := uc.Live.GetByID(ctx, token, appointmentID)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "appointments.GetByID", err)
		if !useFixture {
			return nil, err
		}
		appointment, fixtureErr := uc.Fixture.GetByID(ctx, token, appointmentID)
		if fixtureErr != nil {
			return nil, fixtureErr
		}
		return &responses.AppointmentDetail{Appointment: appointment, Fixture: true}, nil
	}
	return &responses.AppointmentDetail{Appointment: appointment}, nil
}

func (uc *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID string) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetByPatient",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetByPatient(ctx, token, patientID) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetByPatient(ctx, token, patientID) },
	)
}

func (uc *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID string) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetByDoctor",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetByDoctor(ctx, token, doctorID) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetByDoctor(ctx, token, doctorID) },
	)
}

func (uc *appointmentUsecase) GetAppointmentsByDate(ctx context.Context, date string) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetByDate",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetByDate(ctx, token, date) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetByDate(ctx, token, date) },
	)
}

func (uc *appointmentUsecase) GetAppointmentsByDateRange(ctx context.Context, startDate, endDate string) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetByDateRange",
		func(token string) ([]models.Appointment, error) {
			return uc.Live.GetByDateRange(ctx, token, startDate, endDate)
		},
		func(token string) ([]models.Appointment, error) {
			return uc.Fixture.GetByDateRange(ctx, token, startDate, endDate)
		},
	)
}

func (uc *appointmentUsecase) GetTodayAppointments(ctx context.Context) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetToday",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetToday(ctx, token) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetToday(ctx, token) },
	)
}

func (uc *appointmentUsecase) GetUpcomingAppointments(ctx context.Context) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetUpcoming",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetUpcoming(ctx, token) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetUpcoming(ctx, token) },
	)
}

func (uc *appointmentUsecase) GetAppointmentsByStatus(ctx context.Context, status string) (*responses.AppointmentList, error) {
	return uc.listWithFallback(ctx, "appointments.GetByStatus",
		func(token string) ([]models.Appointment, error) { return uc.Live.GetByStatus(ctx, token, status) },
		func(token string) ([]models.Appointment, error) { return uc.Fixture.GetByStatus(ctx, token, status) },
	)
}

// CreateAppointment synthesizes a local fixture record when the backend is
// unreachable. Backend validation rejections still propagate.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.AppointmentDetail, error) {
	return uc.createWithFallback(ctx, "appointments.Create", request)
}

// ScheduleAppointment is the booking flow entry point. The backend exposes it
// as a distinct endpoint with extra conflict checks; the local semantics are
// identical to Create.
func (uc *appointmentUsecase) ScheduleAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.AppointmentDetail, error) {
	token := utils.GetBackendToken(ctx)

	available, err := uc.CheckAvailability(ctx, &requests.CheckAvailability{
		DoctorID:        request.DoctorID,
		Date:            request.AppointmentDate,
		StartTime:       request.AppointmentTime,
		DurationMinutes: request.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	if !available.Available {
		return nil, exceptions.ErrBackendRejected(constvars.ErrClientSlotTaken, constvars.ResourceAppointment)
	}

	appointment, err := uc.Live.Create(ctx, token, request)
	if err != nil {
		if !exceptions.IsTransport(err) {
			uc.teardownExpiredSession(ctx, err)
			return nil, err
		}
		useFixture, err := uc.fallbackErr(ctx, "appointments.Schedule", err)
		if !useFixture {
			return nil, err
		}
		appointment, fixtureErr := uc.Fixture.Create(ctx, token, request)
		if fixtureErr != nil {
			return nil, fixtureErr
		}
		return &responses.AppointmentDetail{Appointment: appointment, Fixture: true}, nil
	}
	return &responses.AppointmentDetail{Appointment: appointment}, nil
}

func (uc *appointmentUsecase) createWithFallback(ctx context.Context, operation string, request *requests.CreateAppointment) (*responses.AppointmentDetail, error) {
	token := utils.GetBackendToken(ctx)

	appointment, err := uc.Live.Create(ctx, token, request)
	if err != nil {
		if !exceptions.IsTransport(err) {
			uc.teardownExpiredSession(ctx, err)
			return nil, err
		}
		useFixture, err := uc.fallbackErr(ctx, operation, err)
		if !useFixture {
			return nil, err
		}
		appointment, fixtureErr := uc.Fixture.Create(ctx, token, request)
		if fixtureErr != nil {
			return nil, fixtureErr
		}
		return &responses.AppointmentDetail{Appointment: appointment, Fixture: true}, nil
	}

	uc.Log.Info("appointmentUsecase appointment created",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.UUID),
	)
	return &responses.AppointmentDetail{Appointment: appointment}, nil
}

// Writes below never fall back: pretending a mutation reached the clinic
// would lose data.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*responses.AppointmentDetail, error) {
	return uc.writeThrough(ctx, func(token string) (*models.Appointment, error) {
		return uc.Live.Update(ctx, token, request)
	})
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*responses.AppointmentDetail, error) {
	return uc.writeThrough(ctx, func(token string) (*models.Appointment, error) {
		return uc.Live.Reschedule(ctx, token, appointmentID, request)
	})
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*responses.AppointmentDetail, error) {
	return uc.writeThrough(ctx, func(token string) (*models.Appointment, error) {
		return uc.Live.Cancel(ctx, token, appointmentID, request)
	})
}

func (uc *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID string, request *requests.CompleteAppointment) (*responses.AppointmentDetail, error) {
	return uc.writeThrough(ctx, func(token string) (*models.Appointment, error) {
		return uc.Live.Complete(ctx, token, appointmentID, request)
	})
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.AppointmentDetail, error) {
	return uc.writeThrough(ctx, func(token string) (*models.Appointment, error) {
		return uc.Live.UpdateStatus(ctx, token, appointmentID, request)
	})
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	token := utils.GetBackendToken(ctx)

	if err := uc.Live.Delete(ctx, token, appointmentID); err != nil {
		uc.teardownExpiredSession(ctx, err)
		return err
	}
	uc.Log.Info("appointmentUsecase.DeleteAppointment",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) CheckAvailability(ctx context.Context, request *requests.CheckAvailability) (*responses.Availability, error) {
	token := utils.GetBackendToken(ctx)

	available, err := uc.Live.CheckAvailability(ctx, token, request)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "appointments.CheckAvailability", err)
		if !useFixture {
			return nil, err
		}
		available, _ = uc.Fixture.CheckAvailability(ctx, token, request)
		return &responses.Availability{Available: available, Fixture: true}, nil
	}
	return &responses.Availability{Available: available}, nil
}

func (uc *appointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	token := utils.GetBackendToken(ctx)

	slots, err := uc.Live.GetAvailableSlots(ctx, token, doctorID, date)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "appointments.GetAvailableSlots", err)
		if !useFixture {
			return nil, err
		}
		slots, _ = uc.Fixture.GetAvailableSlots(ctx, token, doctorID, date)
		return &responses.AvailableSlots{Slots: slots, Fixture: true}, nil
	}
	return &responses.AvailableSlots{Slots: slots}, nil
}

func (uc *appointmentUsecase) writeThrough(ctx context.Context, write func(token string) (*models.Appointment, error)) (*responses.AppointmentDetail, error) {
	token := utils.GetBackendToken(ctx)

	appointment, err := write(token)
	if err != nil {
		uc.teardownExpiredSession(ctx, err)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase appointment updated",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.UUID),
	)
	return &responses.AppointmentDetail{Appointment: appointment}, nil
}
