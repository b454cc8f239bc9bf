package appointments

import (
	"context"
	"testing"
	"time"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/exceptions"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentDataSource struct {
	mock.Mock
}

func (m *MockAppointmentDataSource) GetAll(ctx context.Context, token string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token))
}

func (m *MockAppointmentDataSource) GetByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, appointmentID))
}

func (m *MockAppointmentDataSource) GetByPatient(ctx context.Context, token, patientID string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token, patientID))
}

func (m *MockAppointmentDataSource) GetByDoctor(ctx context.Context, token, doctorID string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token, doctorID))
}

func (m *MockAppointmentDataSource) GetByDate(ctx context.Context, token, date string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token, date))
}

func (m *MockAppointmentDataSource) GetByDateRange(ctx context.Context, token, startDate, endDate string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token, startDate, endDate))
}

func (m *MockAppointmentDataSource) GetToday(ctx context.Context, token string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token))
}

func (m *MockAppointmentDataSource) GetUpcoming(ctx context.Context, token string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token))
}

func (m *MockAppointmentDataSource) GetByStatus(ctx context.Context, token, status string) ([]models.Appointment, error) {
	return m.listCall(m.Called(ctx, token, status))
}

func (m *MockAppointmentDataSource) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, request))
}

func (m *MockAppointmentDataSource) Update(ctx context.Context, token string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, request))
}

func (m *MockAppointmentDataSource) Reschedule(ctx context.Context, token, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, appointmentID, request))
}

func (m *MockAppointmentDataSource) Cancel(ctx context.Context, token, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, appointmentID, request))
}

func (m *MockAppointmentDataSource) Complete(ctx context.Context, token, appointmentID string, request *requests.CompleteAppointment) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, appointmentID, request))
}

func (m *MockAppointmentDataSource) UpdateStatus(ctx context.Context, token, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	return m.detailCall(m.Called(ctx, token, appointmentID, request))
}

func (m *MockAppointmentDataSource) Delete(ctx context.Context, token, appointmentID string) error {
	return m.Called(ctx, token, appointmentID).Error(0)
}

func (m *MockAppointmentDataSource) CheckAvailability(ctx context.Context, token string, request *requests.CheckAvailability) (bool, error) {
	args := m.Called(ctx, token, request)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentDataSource) GetAvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error) {
	args := m.Called(ctx, token, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppointmentDataSource) listCall(args mock.Arguments) ([]models.Appointment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentDataSource) detailCall(args mock.Arguments) (*models.Appointment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func testSessionRepository(t *testing.T) sessions.SessionRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return sessions.NewRedisSessionRepository(client)
}

func TestAppointmentUsecase_ListFallback(t *testing.T) {
	t.Run("transport failure serves fixture appointments", func(t *testing.T) {
		live := new(MockAppointmentDataSource)
		live.On("GetAll", mock.Anything, mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(assert.AnError))

		usecase := NewAppointmentUsecase(live, NewAppointmentFixtureSource(), testSessionRepository(t), true, zap.NewNop())

		response, err := usecase.GetAllAppointments(context.Background())
		require.NoError(t, err)
		assert.True(t, response.Fixture)
		assert.NotEmpty(t, response.Appointments)
	})

	t.Run("session expiry propagates", func(t *testing.T) {
		live := new(MockAppointmentDataSource)
		live.On("GetToday", mock.Anything, mock.Anything).Return(nil, exceptions.ErrSessionExpired())

		usecase := NewAppointmentUsecase(live, NewAppointmentFixtureSource(), testSessionRepository(t), true, zap.NewNop())

		_, err := usecase.GetTodayAppointments(context.Background())
		require.Error(t, err)
		assert.True(t, exceptions.IsSessionExpired(err))
	})
}

func TestAppointmentUsecase_WritesNeverFallBack(t *testing.T) {
	live := new(MockAppointmentDataSource)
	live.On("Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(assert.AnError))

	usecase := NewAppointmentUsecase(live, NewAppointmentFixtureSource(), testSessionRepository(t), true, zap.NewNop())

	_, err := usecase.CancelAppointment(context.Background(), "appt-1", &requests.CancelAppointment{Reason: "sick"})
	require.Error(t, err)
	assert.True(t, exceptions.IsTransport(err))
}

func TestAppointmentUsecase_ScheduleChecksAvailability(t *testing.T) {
	createRequest := &requests.CreateAppointment{
		PatientID:       "p1",
		DoctorID:        "d1",
		AppointmentDate: "2026-09-10",
		AppointmentTime: "09:00",
		DurationMinutes: 30,
		Reason:          "checkup",
	}

	t.Run("occupied slot rejects the booking before any create", func(t *testing.T) {
		live := new(MockAppointmentDataSource)
		live.On("CheckAvailability", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		usecase := NewAppointmentUsecase(live, NewAppointmentFixtureSource(), testSessionRepository(t), true, zap.NewNop())

		_, err := usecase.ScheduleAppointment(context.Background(), createRequest)
		require.Error(t, err)
		live.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("free slot books through the live source", func(t *testing.T) {
		live := new(MockAppointmentDataSource)
		live.On("CheckAvailability", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		live.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(&models.Appointment{UUID: "appt-9"}, nil)

		usecase := NewAppointmentUsecase(live, NewAppointmentFixtureSource(), testSessionRepository(t), true, zap.NewNop())

		response, err := usecase.ScheduleAppointment(context.Background(), createRequest)
		require.NoError(t, err)
		assert.Equal(t, "appt-9", response.Appointment.UUID)
	})
}

func TestAppointmentFixtureSource_Slots(t *testing.T) {
	fixture := NewAppointmentFixtureSource()
	ctx := context.Background()
	today := time.Now().Format(constvars.DateOnlyFormat)

	t.Run("seeded booking removes its slot from the default list", func(t *testing.T) {
		slots, err := fixture.GetAvailableSlots(ctx, "", "fixture-doctor-1", today)
		require.NoError(t, err)
		assert.NotContains(t, slots, "10:00")
		assert.Contains(t, slots, "09:00")
	})

	t.Run("unknown doctor gets the full default list", func(t *testing.T) {
		slots, err := fixture.GetAvailableSlots(ctx, "", "other-doctor", today)
		require.NoError(t, err)
		assert.Equal(t, defaultSlots, slots)
	})

	t.Run("cancelled appointments release their slot", func(t *testing.T) {
		_, err := fixture.Cancel(ctx, "", "fixture-appointment-1", &requests.CancelAppointment{})
		require.NoError(t, err)

		slots, err := fixture.GetAvailableSlots(ctx, "", "fixture-doctor-1", today)
		require.NoError(t, err)
		assert.Contains(t, slots, "10:00")
	})

	t.Run("availability reflects bookings", func(t *testing.T) {
		available, err := fixture.CheckAvailability(ctx, "", &requests.CheckAvailability{
			DoctorID:        "fixture-doctor-1",
			Date:            today,
			StartTime:       "09:00",
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		assert.True(t, available)

		_, err = fixture.Create(ctx, "", &requests.CreateAppointment{
			PatientID:       "p1",
			DoctorID:        "fixture-doctor-1",
			AppointmentDate: today,
			AppointmentTime: "09:00",
			DurationMinutes: 30,
			Reason:          "checkup",
		})
		require.NoError(t, err)

		available, err = fixture.CheckAvailability(ctx, "", &requests.CheckAvailability{
			DoctorID:        "fixture-doctor-1",
			Date:            today,
			StartTime:       "09:00",
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		assert.False(t, available)
	})
}

func TestAppointmentFixtureSource_CreateFillsPatientName(t *testing.T) {
	fixture := NewAppointmentFixtureSource()
	ctx := context.Background()
	today := time.Now().Format(constvars.DateOnlyFormat)

	t.Run("known patient reuses the seeded name", func(t *testing.T) {
		created, err := fixture.Create(ctx, "", &requests.CreateAppointment{
			PatientID:       "fixture-patient-1",
			DoctorID:        "fixture-doctor-1",
			AppointmentDate: today,
			AppointmentTime: "15:00",
			DurationMinutes: 30,
			Reason:          "follow-up",
		})
		require.NoError(t, err)
		assert.Equal(t, "John Doe", created.PatientName)
	})

	t.Run("unknown patient gets the placeholder", func(t *testing.T) {
		created, err := fixture.Create(ctx, "", &requests.CreateAppointment{
			PatientID:       "walk-in-1",
			DoctorID:        "fixture-doctor-1",
			AppointmentDate: today,
			AppointmentTime: "16:00",
			DurationMinutes: 30,
			Reason:          "consultation",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.FixturePatientNamePlaceholder, created.PatientName)
	})
}

func TestAppointmentFixtureSource_StatusTransitions(t *testing.T) {
	fixture := NewAppointmentFixtureSource()
	ctx := context.Background()

	completed, err := fixture.Complete(ctx, "", "fixture-appointment-1", &requests.CompleteAppointment{Notes: "all good", ActualDuration: 25})
	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCompleted, completed.AppointmentStatus)
	assert.Equal(t, "all good", completed.Notes)
	assert.Equal(t, 25, completed.Duration)

	rescheduled, err := fixture.Reschedule(ctx, "", "fixture-appointment-2", &requests.RescheduleAppointment{NewDate: "2026-09-20", NewTime: "11:00"})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-20", rescheduled.Date)
	assert.Equal(t, "11:00", rescheduled.Time)
	assert.Equal(t, constvars.AppointmentStatusScheduled, rescheduled.AppointmentStatus)

	_, err = fixture.UpdateStatus(ctx, "", "missing", &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusNoShow})
	require.Error(t, err)
}
