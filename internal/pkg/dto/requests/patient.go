package requests

type CreatePatient struct {
	FirstName             string `json:"firstName" validate:"required,min=1,max=100"`
	LastName              string `json:"lastName" validate:"required,min=1,max=100"`
	DateOfBirth           string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile                string `json:"mobile" validate:"required,phone_number"`
	Address               string `json:"address" validate:"required"`
	MedicalHistory        string `json:"medicalHistory,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty" validate:"omitempty,phone_number"`
	InsuranceProvider     string `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber string `json:"insurancePolicyNumber,omitempty"`
	BloodGroup            string `json:"bloodGroup,omitempty"`
	Gender                string `json:"gender,omitempty"`
}

type UpdatePatient struct {
	UUID                  string `json:"uuid" validate:"required"`
	FirstName             string `json:"firstName,omitempty"`
	LastName              string `json:"lastName,omitempty"`
	DateOfBirth           string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile                string `json:"mobile,omitempty" validate:"omitempty,phone_number"`
	Address               string `json:"address,omitempty"`
	MedicalHistory        string `json:"medicalHistory,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty" validate:"omitempty,phone_number"`
	InsuranceProvider     string `json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber string `json:"insurancePolicyNumber,omitempty"`
	BloodGroup            string `json:"bloodGroup,omitempty"`
	Gender                string `json:"gender,omitempty"`
}
