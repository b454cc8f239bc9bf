package responses

import "clinicportal-service/internal/app/models"

// Fixture is true when the data came from the in-memory sample dataset
// instead of the clinic backend, so consumers can tell development fallback
// data apart from the real thing.
type PatientList struct {
	Patients []models.Patient `json:"patients"`
	Fixture  bool             `json:"fixture,omitempty"`
}

type PatientDetail struct {
	Patient *models.Patient `json:"patient"`
	Fixture bool            `json:"fixture,omitempty"`
}
