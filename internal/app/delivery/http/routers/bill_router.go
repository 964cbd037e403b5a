package routers

import (
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"
	"aura-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachBillRoutes(router chi.Router, logger *zap.Logger, middlewares *middlewares.Middlewares, billController *controllers.BillController) {
	router.Use(middlewares.Authentication(logger))

	router.Post("/", billController.Create)
	router.Get("/", billController.FindAll)
	router.Post("/pay/{billID}", billController.Pay)

	router.With(middlewares.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleClinicManager)).
		Get("/admin/revenue-chart", billController.RevenueChart)
}
