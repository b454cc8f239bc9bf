package patients

import (
	"context"
	"fmt"
	"net/url"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/app/services/backend"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type patientBackendSource struct {
	RestClient backend.RestClient
}

func NewPatientBackendSource(restClient backend.RestClient) PatientDataSource {
	return &patientBackendSource{
		RestClient: restClient,
	}
}

func (ds *patientBackendSource) GetAll(ctx context.Context, token string) ([]models.Patient, error) {
	envelope, err := ds.RestClient.Get(ctx, constvars.BackendPatientGroupPrefix+"/get/all", token)
	if err != nil {
		return nil, err
	}
	return decodePatientList(envelope)
}

func (ds *patientBackendSource) GetByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	path := fmt.Sprintf("%s/get/%s", constvars.BackendPatientGroupPrefix, url.PathEscape(patientID))
	envelope, err := ds.RestClient.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	return decodePatientDetail(envelope)
}

func (ds *patientBackendSource) GetByMobile(ctx context.Context, token, mobile string) (*models.Patient, error) {
	path := fmt.Sprintf("%s/get/mobile/%s", constvars.BackendPatientGroupPrefix, url.PathEscape(mobile))
	envelope, err := ds.RestClient.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	return decodePatientDetail(envelope)
}

func (ds *patientBackendSource) Search(ctx context.Context, token, query string) ([]models.Patient, error) {
	path := fmt.Sprintf("%s/search?query=%s", constvars.BackendPatientGroupPrefix, url.QueryEscape(query))
	envelope, err := ds.RestClient.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	return decodePatientList(envelope)
}

func (ds *patientBackendSource) Create(ctx context.Context, token string, request *requests.CreatePatient) (*models.Patient, error) {
	envelope, err := ds.RestClient.Post(ctx, constvars.BackendPatientGroupPrefix+"/add", token, request)
	if err != nil {
		return nil, err
	}
	return decodePatientDetail(envelope)
}

func (ds *patientBackendSource) Update(ctx context.Context, token string, request *requests.UpdatePatient) (*models.Patient, error) {
	envelope, err := ds.RestClient.Put(ctx, constvars.BackendPatientGroupPrefix+"/update", token, request)
	if err != nil {
		return nil, err
	}
	return decodePatientDetail(envelope)
}

func (ds *patientBackendSource) Delete(ctx context.Context, token, patientID string) error {
	path := fmt.Sprintf("%s/delete/%s", constvars.BackendPatientGroupPrefix, url.PathEscape(patientID))
	envelope, err := ds.RestClient.Delete(ctx, path, token)
	if err != nil {
		return err
	}
	if !envelope.Success {
		return exceptions.ErrBackendRejected(envelope.Message, constvars.ResourcePatient)
	}
	return nil
}

// decodePatientList accepts the two payload shapes the backend has shipped
// for collections: a bare array, or an object with a "patients" field.
func decodePatientList(envelope *backend.Envelope) ([]models.Patient, error) {
	if !envelope.Success && envelope.Recognized {
		return nil, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourcePatient)
	}

	var list []models.Patient
	if err := json.Unmarshal(envelope.Data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Patients []models.Patient `json:"patients"`
	}
	if err := json.Unmarshal(envelope.Data, &wrapped); err != nil {
		return nil, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourcePatient)
	}
	return wrapped.Patients, nil
}

func decodePatientDetail(envelope *backend.Envelope) (*models.Patient, error) {
	if !envelope.Success && envelope.Recognized {
		return nil, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourcePatient)
	}

	patient := new(models.Patient)
	if err := json.Unmarshal(envelope.Data, patient); err != nil {
		return nil, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourcePatient)
	}
	if patient.UUID == "" {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourcePatient)
	}
	return patient, nil
}
