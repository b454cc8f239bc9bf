package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"clinicportal-service/internal/app/services/appointments"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase appointments.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase appointments.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		instance := &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
		appointmentControllerInstance = instance
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAllAppointments(ctx)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch appointments", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch appointment", err,
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentFetched, response)
}

func (ctrl *AppointmentController) GetAppointmentsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentsByPatient(ctx, patientID)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch patient appointments", err,
			zap.String(constvars.LoggingPatientIDKey, patientID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetAppointmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch doctor appointments", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetAppointmentsByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, constvars.URLParamDate)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentsByDate(ctx, date)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch appointments by date", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetAppointmentsByDateRange(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get(constvars.QueryParamStartDate)
	endDate := r.URL.Query().Get(constvars.QueryParamEndDate)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentsByDateRange(ctx, startDate, endDate)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch appointments by date range", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetTodayAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetTodayAppointments(ctx)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch today's appointments", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetUpcomingAppointments(ctx)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch upcoming appointments", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) GetAppointmentsByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, constvars.URLParamStatus)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentsByStatus(ctx, status)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch appointments by status", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.AppointmentListFetched, response.Fixture), response)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.decodeCreateRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to create appointment", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreated, response)
}

func (ctrl *AppointmentController) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.decodeCreateRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ScheduleAppointment(ctx, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to schedule appointment", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentScheduled, response)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.UpdateAppointment)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if uuid := chi.URLParam(r, constvars.URLParamAppointmentID); uuid != "" {
		request.UUID = uuid
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to update appointment", err,
			zap.String(constvars.LoggingAppointmentIDKey, request.UUID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdated, response)
}

func (ctrl *AppointmentController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.RescheduleAppointment)
	if !ctrl.decodeAndValidate(w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.RescheduleAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to reschedule appointment", err,
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentRescheduled, response)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.CancelAppointment)
	if !ctrl.decodeAndValidate(w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to cancel appointment", err,
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelled, response)
}

func (ctrl *AppointmentController) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.CompleteAppointment)
	if !ctrl.decodeAndValidate(w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CompleteAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to complete appointment", err,
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCompleted, response)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.UpdateAppointmentStatus)
	if !ctrl.decodeAndValidate(w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.UpdateAppointmentStatus(ctx, appointmentID, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to update appointment status", err,
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentStatusUpdated, response)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.DeleteAppointment(ctx, appointmentID); err != nil {
		ctrl.logAndRespond(w, r, "Failed to delete appointment", err,
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDeleted, nil)
}

func (ctrl *AppointmentController) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CheckAvailability)
	if !ctrl.decodeAndValidate(w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CheckAvailability(ctx, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to check availability", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityChecked, response)
}

func (ctrl *AppointmentController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get(constvars.QueryParamDoctorID)
	date := r.URL.Query().Get(constvars.QueryParamDate)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAvailableSlots(ctx, doctorID, date)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch available slots", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableSlotsFetched, response)
}

func (ctrl *AppointmentController) decodeCreateRequest(w http.ResponseWriter, r *http.Request) (*requests.CreateAppointment, bool) {
	request := new(requests.CreateAppointment)
	if !ctrl.decodeAndValidate(w, r, request) {
		return nil, false
	}
	return request, true
}

func (ctrl *AppointmentController) decodeAndValidate(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func (ctrl *AppointmentController) logAndRespond(w http.ResponseWriter, r *http.Request, message string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Error(err),
	)
	ctrl.Log.Error(message, fields...)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
