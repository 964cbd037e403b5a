package contracts

import (
	"context"
	"time"

	"aura-service/internal/app/models"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
)

type ImageUsecase interface {
	UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error)
	ClinicImageStats(ctx context.Context, clinicID string) (*responses.ClinicImageStats, error)
}

type ImageRepository interface {
	FindByID(ctx context.Context, imageID string) (*models.ImageMetadata, error)
	CreateImage(ctx context.Context, image *models.ImageMetadata) error
	CountByClinicID(ctx context.Context, clinicID string) (int64, error)
	FindRecentByClinicID(ctx context.Context, clinicID string, limit int) ([]models.ImageMetadata, error)
	CountByClinicPerDay(ctx context.Context, clinicID string, since time.Time) ([]models.ImageDayCount, error)
}
