package models

type Patient struct {
	UUID                  string `json:"uuid"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	DateOfBirth           string `json:"dateOfBirth"`
	Email                 string `json:"email,omitempty"`
	Mobile                string `json:"mobile"`
	Address               string `json:"address"`
	MedicalHistory        string `json:"medicalHistory,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`
	InsuranceProvider     string `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber string `json:"insurancePolicyNumber,omitempty"`
	BloodGroup            string `json:"bloodGroup,omitempty"`
	Gender                string `json:"gender,omitempty"`
	Status                bool   `json:"status"`
	CreatedAt             string `json:"createdAt,omitempty"`
	UpdatedAt             string `json:"updatedAt,omitempty"`
}
