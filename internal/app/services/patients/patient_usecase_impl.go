package patients

import (
	"context"

	"clinicportal-service/internal/app/services/sessions"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/requests"
	"clinicportal-service/internal/pkg/dto/responses"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Live              PatientDataSource
	Fixture           *PatientFixtureSource
	SessionRepository sessions.SessionRepository
	FixtureFallback   bool
	Log               *zap.Logger
}

func NewPatientUsecase(
	live PatientDataSource,
	fixture *PatientFixtureSource,
	sessionRepository sessions.SessionRepository,
	fixtureFallback bool,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		Live:              live,
		Fixture:           fixture,
		SessionRepository: sessionRepository,
		FixtureFallback:   fixtureFallback,
		Log:               logger,
	}
}

// teardownExpiredSession deletes the local session entry when the backend
// reported the token expired, so the next request fails fast at the session
// middleware instead of re-hitting the backend.
func (uc *patientUsecase) teardownExpiredSession(ctx context.Context, err error) {
	if !exceptions.IsSessionExpired(err) {
		return
	}
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return
	}
	if deleteErr := uc.SessionRepository.DeleteSession(ctx, sessionID); deleteErr != nil {
		uc.Log.Error("patientUsecase session teardown failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(deleteErr),
		)
	}
}

// fallbackErr decides what a failed live call becomes. Session expiry always
// propagates after tearing down the local session; every other error is
// swallowed into the fixture dataset when fallback is enabled.
func (uc *patientUsecase) fallbackErr(ctx context.Context, operation string, err error) (bool, error) {
	if exceptions.IsSessionExpired(err) {
		uc.teardownExpiredSession(ctx, err)
		return false, err
	}
	if !uc.FixtureFallback {
		return false, err
	}
	uc.Log.Warn("patientUsecase falling back to fixture data",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEndpointKey, operation),
		zap.Error(err),
	)
	return true, nil
}

func (uc *patientUsecase) GetAllPatients(ctx context.Context) (*responses.PatientList, error) {
	token := utils.GetBackendToken(ctx)

	patients, err := uc.Live.GetAll(ctx, token)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "patients.GetAll", err)
		if !useFixture {
			return nil, err
		}
		patients, _ = uc.Fixture.GetAll(ctx, token)
		return &responses.PatientList{Patients: patients, Fixture: true}, nil
	}

	uc.Log.Debug("patientUsecase.GetAllPatients",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return &responses.PatientList{Patients: patients}, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.PatientDetail, error) {
	token := utils.GetBackendToken(ctx)

	patient, err := uc.Live.GetByID(ctx, token, patientID)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "patients.GetByID", err)
		if !useFixture {
			return nil, err
		}
		patient, fixtureErr := uc.Fixture.GetByID(ctx, token, patientID)
		if fixtureErr != nil {
			return nil, fixtureErr
		}
		return &responses.PatientDetail{Patient: patient, Fixture: true}, nil
	}
	return &responses.PatientDetail{Patient: patient}, nil
}

func (uc *patientUsecase) GetPatientByMobile(ctx context.Context, mobile string) (*responses.PatientDetail, error) {
	token := utils.GetBackendToken(ctx)

	patient, err := uc.Live.GetByMobile(ctx, token, mobile)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "patients.GetByMobile", err)
		if !useFixture {
			return nil, err
		}
		patient, fixtureErr := uc.Fixture.GetByMobile(ctx, token, mobile)
		if fixtureErr != nil {
			return nil, fixtureErr
		}
		return &responses.PatientDetail{Patient: patient, Fixture: true}, nil
	}
	return &responses.PatientDetail{Patient: patient}, nil
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, query string) (*responses.PatientList, error) {
	token := utils.GetBackendToken(ctx)

	patients, err := uc.Live.Search(ctx, token, query)
	if err != nil {
		useFixture, err := uc.fallbackErr(ctx, "patients.Search", err)
		if !useFixture {
			return nil, err
		}
		patients, _ = uc.Fixture.Search(ctx, token, query)
		return &responses.PatientList{Patients: patients, Fixture: true}, nil
	}
	return &responses.PatientList{Patients: patients}, nil
}

// CreatePatient synthesizes a local fixture record when the backend cannot be
// reached, so the portal stays usable offline. Validation rejections from the
// backend still propagate.
func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientDetail, error) {
	token := utils.GetBackendToken(ctx)

	patient, err := uc.Live.Create(ctx, token, request)
	if err != nil {
		if !exceptions.IsTransport(err) {
			uc.teardownExpiredSession(ctx, err)
			return nil, err
		}
		useFixture, err := uc.fallbackErr(ctx, "patients.Create", err)
		if !useFixture {
			return nil, err
		}
		patient, fixtureErr := uc.Fixture.Create(ctx, token, request)
		if fixtureErr != nil {
			return nil, fixtureErr
		}
		return &responses.PatientDetail{Patient: patient, Fixture: true}, nil
	}

	uc.Log.Info("patientUsecase.CreatePatient",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patient.UUID),
	)
	return &responses.PatientDetail{Patient: patient}, nil
}

// Updates and deletes never fall back: silently pretending a write reached
// the clinic would lose data.
func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.PatientDetail, error) {
	token := utils.GetBackendToken(ctx)

	patient, err := uc.Live.Update(ctx, token, request)
	if err != nil {
		uc.teardownExpiredSession(ctx, err)
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatient",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patient.UUID),
	)
	return &responses.PatientDetail{Patient: patient}, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	token := utils.GetBackendToken(ctx)

	if err := uc.Live.Delete(ctx, token, patientID); err != nil {
		uc.teardownExpiredSession(ctx, err)
		return err
	}
	uc.Log.Info("patientUsecase.DeletePatient",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}
