package contracts

import (
	"context"

	"aura-service/internal/app/models"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
)

type PatientUsecase interface {
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error)
	AddMedicalHistory(ctx context.Context, request *requests.AddMedicalHistory) (*responses.Patient, error)
	CreateFromRegisteredUser(ctx context.Context, event *events.UserRegistered) error
}

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) error
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	AddMedicalHistory(ctx context.Context, patientID string, history *models.MedicalHistory) error
}
