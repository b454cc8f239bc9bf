package responses

import "clinicportal-service/internal/app/models"

type DashboardStats struct {
	Stats   *models.DashboardStats `json:"stats"`
	Fixture bool                   `json:"fixture,omitempty"`
}
