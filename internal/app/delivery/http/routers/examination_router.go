package routers

import (
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"
	"aura-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachExaminationRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, examinationController *controllers.ExaminationController) {
	router.Use(middlewares.Authentication(logger))

	router.Post("/", examinationController.Create)
	router.Get("/", examinationController.FindAll)
	router.Get("/{examinationID}", examinationController.FindByID)
	router.Post("/ai-result/{examinationID}", examinationController.UpdateAIResult)

	router.With(middlewares.RequireRoles(logger, constvars.RoleDoctor)).
		Post("/verify/{examinationID}", examinationController.Verify)

	router.With(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleClinicManager)).
		Get("/admin/stats", examinationController.Stats)
}
