package routers

import (
	"fmt"
	"time"

	"aura-service/internal/app/config"
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"
	"aura-service/internal/app/services/notifications"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	billController *controllers.BillController,
	examinationController *controllers.ExaminationController,
	patientController *controllers.PatientController,
	imageController *controllers.ImageController,
	websocketHandler *notifications.WebsocketHandler,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middleware.Recoverer)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))

	endpointPrefix := internalConfig.App.EndpointPrefix
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/bills", func(r chi.Router) {
				attachBillRoutes(r, logger, middlewares, billController)
			})

			r.Route("/examinations", func(r chi.Router) {
				attachExaminationRoutes(r, logger, middlewares, examinationController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, logger, middlewares, patientController)
			})

			r.Route("/images", func(r chi.Router) {
				attachImageRoutes(r, logger, middlewares, imageController)
			})

			r.With(middlewares.Authentication(logger)).Get("/ws", websocketHandler.HandleConnect)
		})
	})
}
