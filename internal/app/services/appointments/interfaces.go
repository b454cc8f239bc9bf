package appointments

import (
	"context"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
)

// AppointmentDataSource is implemented by the live clinic backend source and
// the in-memory fixture source. The fixture implementation ignores the token.
type AppointmentDataSource interface {
	GetAll(ctx context.Context, token string) ([]models.Appointment, error)
	GetByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	GetByPatient(ctx context.Context, token, patientID string) ([]models.Appointment, error)
	GetByDoctor(ctx context.Context, token, doctorID string) ([]models.Appointment, error)
	GetByDate(ctx context.Context, token, date string) ([]models.Appointment, error)
	GetByDateRange(ctx context.Context, token, startDate, endDate string) ([]models.Appointment, error)
	GetToday(ctx context.Context, token string) ([]models.Appointment, error)
	GetUpcoming(ctx context.Context, token string) ([]models.Appointment, error)
	GetByStatus(ctx context.Context, token, status string) ([]models.Appointment, error)

	Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, token string, request *requests.UpdateAppointment) (*models.Appointment, error)
	Reschedule(ctx context.Context, token, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error)
	Cancel(ctx context.Context, token, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error)
	Complete(ctx context.Context, token, appointmentID string, request *requests.CompleteAppointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, token, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, token, appointmentID string) error

	CheckAvailability(ctx context.Context, token string, request *requests.CheckAvailability) (bool, error)
	GetAvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error)
}

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) (*responses.AppointmentList, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error)
	GetAppointmentsByPatient(ctx context.Context, patientID string) (*responses.AppointmentList, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID string) (*responses.AppointmentList, error)
	GetAppointmentsByDate(ctx context.Context, date string) (*responses.AppointmentList, error)
	GetAppointmentsByDateRange(ctx context.Context, startDate, endDate string) (*responses.AppointmentList, error)
	GetTodayAppointments(ctx context.Context) (*responses.AppointmentList, error)
	GetUpcomingAppointments(ctx context.Context) (*responses.AppointmentList, error)
	GetAppointmentsByStatus(ctx context.Context, status string) (*responses.AppointmentList, error)

	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.AppointmentDetail, error)
	ScheduleAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.AppointmentDetail, error)
	UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*responses.AppointmentDetail, error)
	RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*responses.AppointmentDetail, error)
	CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*responses.AppointmentDetail, error)
	CompleteAppointment(ctx context.Context, appointmentID string, request *requests.CompleteAppointment) (*responses.AppointmentDetail, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.AppointmentDetail, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error

	CheckAvailability(ctx context.Context, request *requests.CheckAvailability) (*responses.Availability, error)
	GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error)
}
