package routers

import (
	"clinicportal-service/internal/app/delivery/http/controllers"
	"clinicportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, m *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(m.Session)

	router.Get("/", appointmentController.GetAllAppointments)
	router.Get("/today", appointmentController.GetTodayAppointments)
	router.Get("/upcoming", appointmentController.GetUpcomingAppointments)
	router.Get("/range", appointmentController.GetAppointmentsByDateRange)
	router.Get("/slots", appointmentController.GetAvailableSlots)
	router.Get("/patient/{patientID}", appointmentController.GetAppointmentsByPatient)
	router.Get("/doctor/{doctorID}", appointmentController.GetAppointmentsByDoctor)
	router.Get("/date/{date}", appointmentController.GetAppointmentsByDate)
	router.Get("/status/{status}", appointmentController.GetAppointmentsByStatus)
	router.Get("/{appointmentID}", appointmentController.GetAppointmentByID)

	router.Post("/", appointmentController.CreateAppointment)
	router.Post("/schedule", appointmentController.ScheduleAppointment)
	router.Post("/availability", appointmentController.CheckAvailability)

	router.Put("/{appointmentID}", appointmentController.UpdateAppointment)
	router.Put("/{appointmentID}/reschedule", appointmentController.RescheduleAppointment)
	router.Put("/{appointmentID}/cancel", appointmentController.CancelAppointment)
	router.Put("/{appointmentID}/complete", appointmentController.CompleteAppointment)
	router.Put("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)

	router.Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
