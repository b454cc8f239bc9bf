package appointments

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

type appointmentBackendSource struct {
	RestClient backend.RestClient
}

func NewAppointmentBackendSource(restClient backend.RestClient) AppointmentDataSource {
	return &appointmentBackendSource{
		RestClient: restClient,
	}
}

func (ds *appointmentBackendSource) GetAll(ctx context.Context, token string) ([]models.Appointment, error) {
	return ds.getList(ctx, token, constvars.BackendAppointmentGroupPrefix+"/get/all")
}

func (ds *appointmentBackendSource) GetByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/get/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(appointmentID))
	envelope, err := ds.RestClient.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) GetByPatient(ctx context.Context, token, patientID string) ([]models.Appointment, error) {
	path := fmt.Sprintf("%s/get/patient/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(patientID))
	return ds.getList(ctx, token, path)
}

func (ds *appointmentBackendSource) GetByDoctor(ctx context.Context, token, doctorID string) ([]models.Appointment, error) {
	path := fmt.Sprintf("%s/get/doctor/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(doctorID))
	return ds.getList(ctx, token, path)
}

func (ds *appointmentBackendSource) GetByDate(ctx context.Context, token, date string) ([]models.Appointment, error) {
	path := fmt.Sprintf("%s/get/date/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(date))
	return ds.getList(ctx, token, path)
}

func (ds *appointmentBackendSource) GetByDateRange(ctx context.Context, token, startDate, endDate string) ([]models.Appointment, error) {
	path := fmt.Sprintf("%s/get/range?startDate=%s&endDate=%s",
		constvars.BackendAppointmentGroupPrefix, url.QueryEscape(startDate), url.QueryEscape(endDate))
	return ds.getList(ctx, token, path)
}

func (ds *appointmentBackendSource) GetToday(ctx context.Context, token string) ([]models.Appointment, error) {
	return ds.getList(ctx, token, constvars.BackendAppointmentGroupPrefix+"/get/today")
}

func (ds *appointmentBackendSource) GetUpcoming(ctx context.Context, token string) ([]models.Appointment, error) {
	return ds.getList(ctx, token, constvars.BackendAppointmentGroupPrefix+"/get/upcoming")
}

func (ds *appointmentBackendSource) GetByStatus(ctx context.Context, token, status string) ([]models.Appointment, error) {
	path := fmt.Sprintf("%s/get/status/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(status))
	return ds.getList(ctx, token, path)
}

func (ds *appointmentBackendSource) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	envelope, err := ds.RestClient.Post(ctx, constvars.BackendAppointmentGroupPrefix+"/add", token, request)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) Update(ctx context.Context, token string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	envelope, err := ds.RestClient.Put(ctx, constvars.BackendAppointmentGroupPrefix+"/update", token, request)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) Reschedule(ctx context.Context, token, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/reschedule/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(appointmentID))
	envelope, err := ds.RestClient.Put(ctx, path, token, request)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) Cancel(ctx context.Context, token, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/cancel/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(appointmentID))
	envelope, err := ds.RestClient.Put(ctx, path, token, request)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) Complete(ctx context.Context, token, appointmentID string, request *requests.CompleteAppointment) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/complete/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(appointmentID))
	envelope, err := ds.RestClient.Put(ctx, path, token, request)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) UpdateStatus(ctx context.Context, token, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	path := fmt.Sprintf("%s/status/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(appointmentID))
	envelope, err := ds.RestClient.Put(ctx, path, token, request)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentDetail(envelope)
}

func (ds *appointmentBackendSource) Delete(ctx context.Context, token, appointmentID string) error {
	path := fmt.Sprintf("%s/delete/%s", constvars.BackendAppointmentGroupPrefix, url.PathEscape(appointmentID))
	envelope, err := ds.RestClient.Delete(ctx, path, token)
	if err != nil {
		return err
	}
	if !envelope.Success {
		return exceptions.ErrBackendRejected(envelope.Message, constvars.ResourceAppointment)
	}
	return nil
}

func (ds *appointmentBackendSource) CheckAvailability(ctx context.Context, token string, request *requests.CheckAvailability) (bool, error) {
	envelope, err := ds.RestClient.Post(ctx, constvars.BackendAppointmentGroupPrefix+"/availability", token, request)
	if err != nil {
		return false, err
	}
	if !envelope.Success && envelope.Recognized {
		return false, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourceAppointment)
	}

	var payload struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return false, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourceAppointment)
	}
	return payload.Available, nil
}

func (ds *appointmentBackendSource) GetAvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error) {
	path := fmt.Sprintf("%s/slots?doctorId=%s&date=%s",
		constvars.BackendAppointmentGroupPrefix, url.QueryEscape(doctorID), url.QueryEscape(date))
	envelope, err := ds.RestClient.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	if !envelope.Success && envelope.Recognized {
		return nil, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourceAppointment)
	}

	var slots []string
	if err := json.Unmarshal(envelope.Data, &slots); err == nil {
		return slots, nil
	}
	var wrapped struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(envelope.Data, &wrapped); err != nil {
		return nil, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourceAppointment)
	}
	return wrapped.Slots, nil
}

func (ds *appointmentBackendSource) getList(ctx context.Context, token, path string) ([]models.Appointment, error) {
	envelope, err := ds.RestClient.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	return decodeAppointmentList(envelope)
}

func decodeAppointmentList(envelope *backend.Envelope) ([]models.Appointment, error) {
	if !envelope.Success && envelope.Recognized {
		return nil, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourceAppointment)
	}

	var list []models.Appointment
	if err := json.Unmarshal(envelope.Data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	if err := json.Unmarshal(envelope.Data, &wrapped); err != nil {
		return nil, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourceAppointment)
	}
	return wrapped.Appointments, nil
}

func decodeAppointmentDetail(envelope *backend.Envelope) (*models.Appointment, error) {
	if !envelope.Success && envelope.Recognized {
		return nil, exceptions.ErrBackendRejected(envelope.Message, constvars.ResourceAppointment)
	}

	appointment := new(models.Appointment)
	if err := json.Unmarshal(envelope.Data, appointment); err != nil {
		return nil, exceptions.ErrDecodeEnvelopePayload(err, constvars.ResourceAppointment)
	}
	if appointment.UUID == "" {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceAppointment)
	}
	return appointment, nil
}
