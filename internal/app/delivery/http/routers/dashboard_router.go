package routers

import (
	"clinicportal-service/internal/app/delivery/http/controllers"
	"clinicportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, m *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(m.Session).Get("/stats", dashboardController.GetDashboardStats)
}
