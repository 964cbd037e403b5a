package routers

import (
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"
	"aura-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachImageRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, imageController *controllers.ImageController) {
	router.Use(middlewares.Authentication(logger))

	router.Post("/", imageController.Upload)

	router.With(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleClinicManager)).
		Get("/admin/stats", imageController.Stats)
}
