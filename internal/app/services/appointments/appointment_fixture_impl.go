package appointments

import (
	"context"
	"sync"
	"time"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"
)

// defaultSlots are the bookable times offered when the backend cannot be
// asked for a doctor's real schedule.
var defaultSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// AppointmentFixtureSource is the in-memory sample dataset used when the
// clinic backend is unreachable and fixture fallback is enabled. Safe for
// concurrent use; shared with the dashboard fixture stats.
type AppointmentFixtureSource struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewAppointmentFixtureSource() *AppointmentFixtureSource {
	now := time.Now()
	created := now.Format(time.RFC3339)
	return &AppointmentFixtureSource{
		appointments: []models.Appointment{
			{
				UUID:              "fixture-appointment-1",
				PatientID:         "fixture-patient-1",
				PatientName:       "John Doe",
				DoctorID:          "fixture-doctor-1",
				DoctorName:        "Dr. Sarah Wilson",
				Date:              now.Format(constvars.DateOnlyFormat),
				Time:              "10:00",
				Duration:          30,
				Reason:            "Routine checkup",
				AppointmentStatus: constvars.AppointmentStatusScheduled,
				AppointmentType:   "CONSULTATION",
				EstimatedCost:     75,
				Status:            true,
				CreatedAt:         created,
				UpdatedAt:         created,
			},
			{
				UUID:              "fixture-appointment-2",
				PatientID:         "fixture-patient-2",
				PatientName:       "Jane Smith",
				DoctorID:          "fixture-doctor-1",
				DoctorName:        "Dr. Sarah Wilson",
				Date:              now.AddDate(0, 0, 2).Format(constvars.DateOnlyFormat),
				Time:              "14:00",
				Duration:          45,
				Reason:            "Follow-up visit",
				AppointmentStatus: constvars.AppointmentStatusScheduled,
				AppointmentType:   "FOLLOW_UP",
				EstimatedCost:     50,
				Status:            true,
				CreatedAt:         created,
				UpdatedAt:         created,
			},
		},
	}
}

func (ds *AppointmentFixtureSource) GetAll(ctx context.Context, token string) ([]models.Appointment, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return append([]models.Appointment(nil), ds.appointments...), nil
}

func (ds *AppointmentFixtureSource) GetByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for i := range ds.appointments {
		if ds.appointments[i].UUID == appointmentID {
			appointment := ds.appointments[i]
			return &appointment, nil
		}
	}
	return nil, exceptions.ErrResourceNotFound(constvars.ResourceAppointment)
}

func (ds *AppointmentFixtureSource) GetByPatient(ctx context.Context, token, patientID string) ([]models.Appointment, error) {
	return ds.filter(func(appointment *models.Appointment) bool {
		return appointment.PatientID == patientID
	}), nil
}

func (ds *AppointmentFixtureSource) GetByDoctor(ctx context.Context, token, doctorID string) ([]models.Appointment, error) {
	return ds.filter(func(appointment *models.Appointment) bool {
		return appointment.DoctorID == doctorID
	}), nil
}

func (ds *AppointmentFixtureSource) GetByDate(ctx context.Context, token, date string) ([]models.Appointment, error) {
	return ds.filter(func(appointment *models.Appointment) bool {
		return appointment.Date == date
	}), nil
}

func (ds *AppointmentFixtureSource) GetByDateRange(ctx context.Context, token, startDate, endDate string) ([]models.Appointment, error) {
	return ds.filter(func(appointment *models.Appointment) bool {
		return appointment.Date >= startDate && appointment.Date <= endDate
	}), nil
}

func (ds *AppointmentFixtureSource) GetToday(ctx context.Context, token string) ([]models.Appointment, error) {
	today := time.Now().Format(constvars.DateOnlyFormat)
	return ds.GetByDate(ctx, token, today)
}

func (ds *AppointmentFixtureSource) GetUpcoming(ctx context.Context, token string) ([]models.Appointment, error) {
	today := time.Now().Format(constvars.DateOnlyFormat)
	return ds.filter(func(appointment *models.Appointment) bool {
		return appointment.Date >= today && appointment.AppointmentStatus == constvars.AppointmentStatusScheduled
	}), nil
}

func (ds *AppointmentFixtureSource) GetByStatus(ctx context.Context, token, status string) ([]models.Appointment, error) {
	return ds.filter(func(appointment *models.Appointment) bool {
		return appointment.AppointmentStatus == status
	}), nil
}

func (ds *AppointmentFixtureSource) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	status := request.Status
	if status == "" {
		status = constvars.AppointmentStatusScheduled
	}
	now := time.Now().Format(time.RFC3339)
	appointment := models.Appointment{
		UUID:              utils.GenerateFixtureID(),
		PatientID:         request.PatientID,
		PatientName:       ds.patientNameFor(request.PatientID),
		DoctorID:          request.DoctorID,
		DoctorName:        request.DoctorName,
		Date:              request.AppointmentDate,
		Time:              request.AppointmentTime,
		Duration:          request.DurationMinutes,
		Reason:            request.Reason,
		AppointmentStatus: status,
		Notes:             request.Notes,
		AppointmentType:   request.AppointmentType,
		EstimatedCost:     request.EstimatedCost,
		Status:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	ds.mu.Lock()
	ds.appointments = append(ds.appointments, appointment)
	ds.mu.Unlock()
	return &appointment, nil
}

// patientNameFor reuses the name from an existing record for the same
// patient so synthesized lists do not render a blank name column.
func (ds *AppointmentFixtureSource) patientNameFor(patientID string) string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for i := range ds.appointments {
		if ds.appointments[i].PatientID == patientID && ds.appointments[i].PatientName != "" {
			return ds.appointments[i].PatientName
		}
	}
	return constvars.FixturePatientNamePlaceholder
}

func (ds *AppointmentFixtureSource) Update(ctx context.Context, token string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	return ds.mutate(request.UUID, func(appointment *models.Appointment) {
		if request.DoctorID != "" {
			appointment.DoctorID = request.DoctorID
		}
		if request.DoctorName != "" {
			appointment.DoctorName = request.DoctorName
		}
		if request.AppointmentDate != "" {
			appointment.Date = request.AppointmentDate
		}
		if request.AppointmentTime != "" {
			appointment.Time = request.AppointmentTime
		}
		if request.DurationMinutes > 0 {
			appointment.Duration = request.DurationMinutes
		}
		if request.Reason != "" {
			appointment.Reason = request.Reason
		}
		if request.Status != "" {
			appointment.AppointmentStatus = request.Status
		}
		if request.Notes != "" {
			appointment.Notes = request.Notes
		}
		if request.AppointmentType != "" {
			appointment.AppointmentType = request.AppointmentType
		}
		if request.EstimatedCost > 0 {
			appointment.EstimatedCost = request.EstimatedCost
		}
	})
}

func (ds *AppointmentFixtureSource) Reschedule(ctx context.Context, token, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error) {
	return ds.mutate(appointmentID, func(appointment *models.Appointment) {
		appointment.Date = request.NewDate
		appointment.Time = request.NewTime
		appointment.AppointmentStatus = constvars.AppointmentStatusScheduled
	})
}

func (ds *AppointmentFixtureSource) Cancel(ctx context.Context, token, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error) {
	return ds.mutate(appointmentID, func(appointment *models.Appointment) {
		appointment.AppointmentStatus = constvars.AppointmentStatusCancelled
		if request.Reason != "" {
			appointment.Notes = request.Reason
		}
	})
}

func (ds *AppointmentFixtureSource) Complete(ctx context.Context, token, appointmentID string, request *requests.CompleteAppointment) (*models.Appointment, error) {
	return ds.mutate(appointmentID, func(appointment *models.Appointment) {
		appointment.AppointmentStatus = constvars.AppointmentStatusCompleted
		if request.Notes != "" {
			appointment.Notes = request.Notes
		}
		if request.ActualDuration > 0 {
			appointment.Duration = request.ActualDuration
		}
	})
}

func (ds *AppointmentFixtureSource) UpdateStatus(ctx context.Context, token, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	return ds.mutate(appointmentID, func(appointment *models.Appointment) {
		appointment.AppointmentStatus = request.Status
	})
}

func (ds *AppointmentFixtureSource) Delete(ctx context.Context, token, appointmentID string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for i := range ds.appointments {
		if ds.appointments[i].UUID == appointmentID {
			ds.appointments = append(ds.appointments[:i], ds.appointments[i+1:]...)
			return nil
		}
	}
	return exceptions.ErrResourceNotFound(constvars.ResourceAppointment)
}

// CheckAvailability treats a slot as free when no active appointment for the
// doctor occupies the same date and start time.
func (ds *AppointmentFixtureSource) CheckAvailability(ctx context.Context, token string, request *requests.CheckAvailability) (bool, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for i := range ds.appointments {
		appointment := &ds.appointments[i]
		if appointment.DoctorID != request.DoctorID || appointment.Date != request.Date {
			continue
		}
		if appointment.AppointmentStatus == constvars.AppointmentStatusCancelled {
			continue
		}
		if appointment.Time == request.StartTime {
			return false, nil
		}
	}
	return true, nil
}

func (ds *AppointmentFixtureSource) GetAvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error) {
	taken := make(map[string]bool)
	ds.mu.RLock()
	for i := range ds.appointments {
		appointment := &ds.appointments[i]
		if appointment.DoctorID == doctorID && appointment.Date == date &&
			appointment.AppointmentStatus != constvars.AppointmentStatusCancelled {
			taken[appointment.Time] = true
		}
	}
	ds.mu.RUnlock()

	slots := make([]string, 0, len(defaultSlots))
	for _, slot := range defaultSlots {
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// Counts supports the dashboard fixture stats.
func (ds *AppointmentFixtureSource) Counts() (todayCount, upcoming, completed int) {
	today := time.Now().Format(constvars.DateOnlyFormat)
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for i := range ds.appointments {
		appointment := &ds.appointments[i]
		if appointment.Date == today {
			todayCount++
		}
		if appointment.Date >= today && appointment.AppointmentStatus == constvars.AppointmentStatusScheduled {
			upcoming++
		}
		if appointment.AppointmentStatus == constvars.AppointmentStatusCompleted {
			completed++
		}
	}
	return todayCount, upcoming, completed
}

func (ds *AppointmentFixtureSource) filter(keep func(*models.Appointment) bool) []models.Appointment {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	matches := make([]models.Appointment, 0)
	for i := range ds.appointments {
		if keep(&ds.appointments[i]) {
			matches = append(matches, ds.appointments[i])
		}
	}
	return matches
}

func (ds *AppointmentFixtureSource) mutate(appointmentID string, apply func(*models.Appointment)) (*models.Appointment, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for i := range ds.appointments {
		if ds.appointments[i].UUID != appointmentID {
			continue
		}
		apply(&ds.appointments[i])
		ds.appointments[i].UpdatedAt = time.Now().Format(time.RFC3339)
		appointment := ds.appointments[i]
		return &appointment, nil
	}
	return nil, exceptions.ErrResourceNotFound(constvars.ResourceAppointment)
}
