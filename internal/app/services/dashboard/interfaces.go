package dashboard

import (
	"context"

	"clinicportal-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboardStats(ctx context.Context) (*responses.DashboardStats, error)
}
