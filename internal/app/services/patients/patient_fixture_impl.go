package patients

import (
	"context"
	"strings"
	"sync"
	"time"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"
)

// PatientFixtureSource is the in-memory sample dataset used when the clinic
// backend is unreachable and fixture fallback is enabled. It is safe for
// concurrent use and shared with the dashboard fixture stats.
type PatientFixtureSource struct {
	mu       sync.RWMutex
	patients []models.Patient
}

func NewPatientFixtureSource() *PatientFixtureSource {
	now := time.Now().Format(time.RFC3339)
	return &PatientFixtureSource{
		patients: []models.Patient{
			{
				UUID:        "fixture-patient-1",
				FirstName:   "John",
				LastName:    "Doe",
				DateOfBirth: "1985-03-12",
				Email:       "john.doe@example.com",
				Mobile:      "+15550100001",
				Address:     "123 Main Street, Springfield",
				BloodGroup:  "O+",
				Gender:      "MALE",
				Status:      true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				UUID:        "fixture-patient-2",
				FirstName:   "Jane",
				LastName:    "Smith",
				DateOfBirth: "1992-07-24",
				Email:       "jane.smith@example.com",
				Mobile:      "+15550100002",
				Address:     "456 Oak Avenue, Springfield",
				BloodGroup:  "A-",
				Gender:      "FEMALE",
				Status:      true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
	}
}

func (ds *PatientFixtureSource) GetAll(ctx context.Context, token string) ([]models.Patient, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return append([]models.Patient(nil), ds.patients...), nil
}

func (ds *PatientFixtureSource) GetByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for i := range ds.patients {
		if ds.patients[i].UUID == patientID {
			patient := ds.patients[i]
			return &patient, nil
		}
	}
	return nil, exceptions.ErrResourceNotFound(constvars.ResourcePatient)
}

func (ds *PatientFixtureSource) GetByMobile(ctx context.Context, token, mobile string) (*models.Patient, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for i := range ds.patients {
		if ds.patients[i].Mobile == mobile {
			patient := ds.patients[i]
			return &patient, nil
		}
	}
	return nil, exceptions.ErrResourceNotFound(constvars.ResourcePatient)
}

// Search matches case-insensitively on name, mobile and email, the same
// fields the backend search endpoint covers.
func (ds *PatientFixtureSource) Search(ctx context.Context, token, query string) ([]models.Patient, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return ds.GetAll(ctx, token)
	}

	ds.mu.RLock()
	defer ds.mu.RUnlock()
	matches := make([]models.Patient, 0)
	for i := range ds.patients {
		patient := ds.patients[i]
		haystack := strings.ToLower(patient.FirstName + " " + patient.LastName + " " + patient.Mobile + " " + patient.Email)
		if strings.Contains(haystack, needle) {
			matches = append(matches, patient)
		}
	}
	return matches, nil
}

func (ds *PatientFixtureSource) Create(ctx context.Context, token string, request *requests.CreatePatient) (*models.Patient, error) {
	now := time.Now().Format(time.RFC3339)
	patient := models.Patient{
		UUID:                  utils.GenerateFixtureID(),
		FirstName:             request.FirstName,
		LastName:              request.LastName,
		DateOfBirth:           request.DateOfBirth,
		Email:                 request.Email,
		Mobile:                request.Mobile,
		Address:               request.Address,
		MedicalHistory:        request.MedicalHistory,
		Allergies:             request.Allergies,
		EmergencyContactName:  request.EmergencyContactName,
		EmergencyContactPhone: request.EmergencyContactPhone,
		InsuranceProvider:     request.InsuranceProvider,
		InsurancePolicyNumber: request.InsurancePolicyNumber,
		BloodGroup:            request.BloodGroup,
		Gender:                request.Gender,
		Status:                true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	ds.mu.Lock()
	ds.patients = append(ds.patients, patient)
	ds.mu.Unlock()
	return &patient, nil
}

func (ds *PatientFixtureSource) Update(ctx context.Context, token string, request *requests.UpdatePatient) (*models.Patient, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for i := range ds.patients {
		if ds.patients[i].UUID != request.UUID {
			continue
		}
		applyPatientUpdate(&ds.patients[i], request)
		ds.patients[i].UpdatedAt = time.Now().Format(time.RFC3339)
		patient := ds.patients[i]
		return &patient, nil
	}
	return nil, exceptions.ErrResourceNotFound(constvars.ResourcePatient)
}

func (ds *PatientFixtureSource) Delete(ctx context.Context, token, patientID string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for i := range ds.patients {
		if ds.patients[i].UUID == patientID {
			ds.patients = append(ds.patients[:i], ds.patients[i+1:]...)
			return nil
		}
	}
	return exceptions.ErrResourceNotFound(constvars.ResourcePatient)
}

// Count supports the dashboard fixture stats.
func (ds *PatientFixtureSource) Count() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return len(ds.patients)
}

func applyPatientUpdate(patient *models.Patient, request *requests.UpdatePatient) {
	if request.FirstName != "" {
		patient.FirstName = request.FirstName
	}
	if request.LastName != "" {
		patient.LastName = request.LastName
	}
	if request.DateOfBirth != "" {
		patient.DateOfBirth = request.DateOfBirth
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	if request.Mobile != "" {
		patient.Mobile = request.Mobile
	}
	if request.Address != "" {
		patient.Address = request.Address
	}
	if request.MedicalHistory != "" {
		patient.MedicalHistory = request.MedicalHistory
	}
	if request.Allergies != "" {
		patient.Allergies = request.Allergies
	}
	if request.EmergencyContactName != "" {
		patient.EmergencyContactName = request.EmergencyContactName
	}
	if request.EmergencyContactPhone != "" {
		patient.EmergencyContactPhone = request.EmergencyContactPhone
	}
	if request.InsuranceProvider != "" {
		patient.InsuranceProvider = request.InsuranceProvider
	}
	if request.InsurancePolicyNumber != "" {
		patient.InsurancePolicyNumber = request.InsurancePolicyNumber
	}
	if request.BloodGroup != "" {
		patient.BloodGroup = request.BloodGroup
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
}
