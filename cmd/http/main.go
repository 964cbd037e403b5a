package main

import (
	"aura-service/internal/app/config"
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"
	"aura-service/internal/app/delivery/http/routers"
	"aura-service/internal/app/drivers/database"
	"aura-service/internal/app/drivers/logger"
	"aura-service/internal/app/drivers/messaging"
	"aura-service/internal/app/drivers/storage"
	"aura-service/internal/app/services/auth"
	"aura-service/internal/app/services/billing"
	"aura-service/internal/app/services/examinations"
	"aura-service/internal/app/services/imaging"
	"aura-service/internal/app/services/notifications"
	"aura-service/internal/app/services/patients"
	"aura-service/internal/app/services/shared/eventbus"
	"aura-service/internal/app/services/shared/idempotency"
	"aura-service/internal/app/services/shared/redis"
	minioStorage "aura-service/internal/app/services/shared/storage"
	"aura-service/internal/pkg/events"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

const consumerPrefetch = 10

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(&bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error shutting down application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	idempotencyGuard := idempotency.NewRedisGuard(redisRepository)
	objectStorage := minioStorage.NewMinioStorage(minioClient, bootstrap.InternalConfig)

	eventPublisher, err := eventbus.NewPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Error creating event publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.InternalConfig)

	// Auth
	userPostgresRepository := auth.NewUserPostgresRepository(bootstrap.PostgresDB)
	authUsecase := auth.NewAuthUsecase(userPostgresRepository, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Patient
	patientPostgresRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB)
	patientUsecase := patients.NewPatientUsecase(patientPostgresRepository, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Examination
	examinationPostgresRepository := examinations.NewExaminationPostgresRepository(bootstrap.PostgresDB)
	examinationUsecase := examinations.NewExaminationUsecase(examinationPostgresRepository, eventPublisher, bootstrap.Logger)
	examinationController := controllers.NewExaminationController(bootstrap.Logger, examinationUsecase)

	// Billing
	billPostgresRepository := billing.NewBillPostgresRepository(bootstrap.PostgresDB)
	billUsecase := billing.NewBillUsecase(billPostgresRepository, bootstrap.InternalConfig, bootstrap.Logger)
	billController := controllers.NewBillController(bootstrap.Logger, billUsecase)

	// Imaging
	imagePostgresRepository := imaging.NewImagePostgresRepository(bootstrap.PostgresDB)
	imageUsecase := imaging.NewImageUsecase(imagePostgresRepository, objectStorage, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	imageController := controllers.NewImageController(bootstrap.Logger, imageUsecase)

	// Notifications
	registry := notifications.NewRegistry()
	hub := notifications.NewHub(registry, bootstrap.Logger)
	websocketHandler := notifications.NewWebsocketHandler(hub, bootstrap.Logger)

	// Event consumers
	dispatcher := eventbus.NewDispatcher(bootstrap.RabbitMQ, bootstrap.Logger, consumerPrefetch)
	dispatcher.Subscribe(events.QueueImageUploaded, examinations.NewImageUploadedConsumer(examinationUsecase, idempotencyGuard, bootstrap.Logger))
	dispatcher.Subscribe(events.QueueExaminationCreated, billing.NewExaminationCreatedConsumer(billUsecase, idempotencyGuard, bootstrap.Logger))
	dispatcher.Subscribe(events.QueueUserRegistered, patients.NewUserRegisteredConsumer(patientUsecase, idempotencyGuard, bootstrap.Logger))
	dispatcher.Subscribe(events.QueueAnalysisCompleted, notifications.NewAnalysisCompletedConsumer(hub, idempotencyGuard, bootstrap.Logger))
	dispatcher.Subscribe(events.QueueDiagnosisVerified, notifications.NewDiagnosisVerifiedConsumer(hub, idempotencyGuard, bootstrap.Logger))
	if err := dispatcher.Start(); err != nil {
		logrus.Fatalf("Error starting event consumers: %v", err)
	}
	bootstrap.ConsumerStop = dispatcher.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		middlewares,
		authController,
		billController,
		examinationController,
		patientController,
		imageController,
		websocketHandler,
	)
}
