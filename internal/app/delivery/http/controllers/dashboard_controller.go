package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"clinicportal-service/internal/app/services/dashboard"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase dashboard.DashboardUsecase
}

var (
	dashboardControllerInstance *DashboardController
	onceDashboardController     sync.Once
)

func NewDashboardController(logger *zap.Logger, dashboardUsecase dashboard.DashboardUsecase) *DashboardController {
	onceDashboardController.Do(func() {
		instance := &DashboardController{
			Log:              logger,
			DashboardUsecase: dashboardUsecase,
		}
		dashboardControllerInstance = instance
	})
	return dashboardControllerInstance
}

func (ctrl *DashboardController) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetDashboardStats(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to fetch dashboard stats",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, listMessage(constvars.DashboardStatsFetched, response.Fixture), response)
}
