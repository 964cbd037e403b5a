package contracts

import (
	"context"

	"aura-service/internal/app/models"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
)

type ExaminationUsecase interface {
	CreateExamination(ctx context.Context, request *requests.CreateExamination) (*responses.Examination, error)
	FindByID(ctx context.Context, examinationID string) (*responses.Examination, error)
	FindAll(ctx context.Context, request *requests.ListExaminations) ([]responses.Examination, error)
	VerifyDiagnosis(ctx context.Context, request *requests.VerifyDiagnosis) (*responses.Examination, error)
	ApplyAnalysisResult(ctx context.Context, request *requests.ApplyAnalysis) (*responses.Examination, error)
	StatsSummary(ctx context.Context, clinicID string) (*responses.ExaminationStats, error)
	CreateFromUploadedImage(ctx context.Context, event *events.ImageUploaded) error
}

type ExaminationRepository interface {
	FindByID(ctx context.Context, examinationID string) (*models.Examination, error)
	FindByImageID(ctx context.Context, imageID string) (*models.Examination, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Examination, error)
	FindByClinicID(ctx context.Context, clinicID string) ([]models.Examination, error)
	CreateExamination(ctx context.Context, examination *models.Examination) error
	UpdateExamination(ctx context.Context, examination *models.Examination) error
}
