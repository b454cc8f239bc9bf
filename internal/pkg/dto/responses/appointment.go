package responses

import "clinicportal-service/internal/app/models"

type AppointmentList struct {
	Appointments []models.Appointment `json:"appointments"`
	Fixture      bool                 `json:"fixture,omitempty"`
}

type AppointmentDetail struct {
	Appointment *models.Appointment `json:"appointment"`
	Fixture     bool                `json:"fixture,omitempty"`
}

type Availability struct {
	Available bool `json:"available"`
	Fixture   bool `json:"fixture,omitempty"`
}

type AvailableSlots struct {
	Slots   []string `json:"slots"`
	Fixture bool     `json:"fixture,omitempty"`
}
