package requests

type CreateAppointment struct {
	PatientID       string  `json:"patientId" validate:"required"`
	DoctorID        string  `json:"doctorId" validate:"required"`
	DoctorName      string  `json:"doctorName,omitempty"`
	AppointmentDate string  `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string  `json:"appointmentTime" validate:"required,datetime=15:04"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,gt=0"`
	Reason          string  `json:"reason" validate:"required"`
	Status          string  `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED NO_SHOW"`
	Notes           string  `json:"notes,omitempty"`
	AppointmentType string  `json:"appointmentType,omitempty"`
	EstimatedCost   float64 `json:"estimatedCost,omitempty" validate:"omitempty,gte=0"`
}

type UpdateAppointment struct {
	UUID            string  `json:"uuid" validate:"required"`
	DoctorID        string  `json:"doctorId,omitempty"`
	DoctorName      string  `json:"doctorName,omitempty"`
	AppointmentDate string  `json:"appointmentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AppointmentTime string  `json:"appointmentTime,omitempty" validate:"omitempty,datetime=15:04"`
	DurationMinutes int     `json:"durationMinutes,omitempty" validate:"omitempty,gt=0"`
	Reason          string  `json:"reason,omitempty"`
	Status          string  `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED NO_SHOW"`
	Notes           string  `json:"notes,omitempty"`
	AppointmentType string  `json:"appointmentType,omitempty"`
	EstimatedCost   float64 `json:"estimatedCost,omitempty" validate:"omitempty,gte=0"`
}

// RescheduleAppointment moves an existing appointment to a new slot.
type RescheduleAppointment struct {
	NewDate string `json:"newDate" validate:"required,datetime=2006-01-02"`
	NewTime string `json:"newTime" validate:"required,datetime=15:04"`
}

type CancelAppointment struct {
	Reason string `json:"reason,omitempty"`
}

type CompleteAppointment struct {
	Notes          string `json:"notes,omitempty"`
	ActualDuration int    `json:"actualDuration,omitempty" validate:"omitempty,gt=0"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED COMPLETED CANCELLED NO_SHOW"`
}

type CheckAvailability struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"startTime" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
}
