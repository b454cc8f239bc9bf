package patients

import (
	"context"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
)

// PatientDataSource is implemented by both the live clinic backend source and
// the in-memory fixture source. Token is the backend bearer token; the
// fixture implementation ignores it.
type PatientDataSource interface {
	GetAll(ctx context.Context, token string) ([]models.Patient, error)
	GetByID(ctx context.Context, token, patientID string) (*models.Patient, error)
	GetByMobile(ctx context.Context, token, mobile string) (*models.Patient, error)
	Search(ctx context.Context, token, query string) ([]models.Patient, error)
	Create(ctx context.Context, token string, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, token string, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, token, patientID string) error
}

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*responses.PatientList, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.PatientDetail, error)
	GetPatientByMobile(ctx context.Context, mobile string) (*responses.PatientDetail, error)
	SearchPatients(ctx context.Context, query string) (*responses.PatientList, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientDetail, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.PatientDetail, error)
	DeletePatient(ctx context.Context, patientID string) error
}
