package models

type Appointment struct {
	UUID              string  `json:"uuid"`
	PatientID         string  `json:"patientId"`
	PatientName       string  `json:"patientName,omitempty"`
	DoctorID          string  `json:"doctorId"`
	DoctorName        string  `json:"doctorName,omitempty"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	Duration          int     `json:"duration"`
	Reason            string  `json:"reason,omitempty"`
	AppointmentStatus string  `json:"appointmentStatus"`
	Notes             string  `json:"notes,omitempty"`
	AppointmentType   string  `json:"appointmentType,omitempty"`
	EstimatedCost     float64 `json:"estimatedCost,omitempty"`
	Status            bool    `json:"status"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}
