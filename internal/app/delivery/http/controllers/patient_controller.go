package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"clinicportal-service/internal/app/services/patients"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase patients.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase patients.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetAllPatients(ctx)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch patients", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.PatientListFetched, response.Fixture), response)
}

func (ctrl *PatientController) GetPatientByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetPatientByID(ctx, patientID)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch patient", err,
			zap.String(constvars.LoggingPatientIDKey, patientID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientFetched, response)
}

func (ctrl *PatientController) GetPatientByMobile(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, constvars.URLParamMobile)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetPatientByMobile(ctx, mobile)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to fetch patient by mobile", err,
			zap.String(constvars.LoggingMobileKey, mobile))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientFetched, response)
}

func (ctrl *PatientController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(constvars.QueryParamQuery)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.SearchPatients(ctx, query)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to search patients", err,
			zap.String(constvars.LoggingQueryKey, query))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.PatientListFetched, response.Fixture), response)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePatient(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to create patient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreated, response)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if uuid := chi.URLParam(r, constvars.URLParamPatientID); uuid != "" {
		request.UUID = uuid
	}

	utils.SanitizeUpdatePatient(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdatePatient(ctx, request)
	if err != nil {
		ctrl.logAndRespond(w, r, "Failed to update patient", err,
			zap.String(constvars.LoggingPatientIDKey, request.UUID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdated, response)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PatientUsecase.DeletePatient(ctx, patientID); err != nil {
		ctrl.logAndRespond(w, r, "Failed to delete patient", err,
			zap.String(constvars.LoggingPatientIDKey, patientID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDeleted, nil)
}

func (ctrl *PatientController) logAndRespond(w http.ResponseWriter, r *http.Request, message string, err error, fields ...zap.Field) {
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
