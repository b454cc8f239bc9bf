package routers

import (
	"clinicportal-service/internal/app/delivery/http/controllers"
	"clinicportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, m *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(m.Session)

	router.Get("/", patientController.GetAllPatients)
	router.Get("/search", patientController.SearchPatients)
	router.Get("/mobile/{mobile}", patientController.GetPatientByMobile)
	router.Get("/{patientID}", patientController.GetPatientByID)
	router.Post("/", patientController.CreatePatient)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Delete("/{patientID}", patientController.DeletePatient)
}
