package routers

import (
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachPatientRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authentication(logger))

	router.Get("/me", patientController.Me)
	router.Get("/{patientID}", patientController.FindByID)
	router.Put("/{patientID}", patientController.Update)
	router.Post("/{patientID}/medical-histories", patientController.AddMedicalHistory)
}
