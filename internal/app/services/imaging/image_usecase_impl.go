package imaging

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"aura-service/internal/app/config"
	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentImagesLimit = 5

type imageUsecase struct {
	ImageRepository contracts.ImageRepository
	Storage         contracts.Storage
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewImageUsecase(
	imagePostgresRepository contracts.ImageRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ImageUsecase {
	return &imageUsecase{
		ImageRepository: imagePostgresRepository,
		Storage:         storage,
		EventPublisher:  eventPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *imageUsecase) UploadImage(ctx context.Context, request *requests.UploadImage) (*responses.UploadImage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("imageUsecase.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.validateUpload(request); err != nil {
		return nil, err
	}

	imageID := uuid.NewString()
	objectName := utils.GenerateFileName("retina", imageID, filepath.Ext(request.FileName))

	objectURL, err := uc.Storage.UploadFile(
		ctx,
		request.Reader,
		request.Size,
		request.ContentType,
		uc.InternalConfig.Minio.BucketName,
		objectName,
	)
	if err != nil {
		return nil, err
	}
	// Media storage reporting neither URL nor object name means the binary
	// never landed; metadata must not be persisted for it.
	if objectURL == "" || objectName == "" {
		return nil, exceptions.ErrImageUploadFailed(nil)
	}

	image := &models.ImageMetadata{
		ID:         imageID,
		PatientID:  request.PatientID,
		ClinicID:   request.ClinicID,
		ImageURL:   objectURL,
		ObjectID:   objectName,
		UploadedAt: time.Now().UTC(),
	}
	if err := uc.ImageRepository.CreateImage(ctx, image); err != nil {
		return nil, err
	}

	event := events.ImageUploaded{
		Envelope:  events.NewEnvelope(),
		ImageID:   image.ID,
		ImageURL:  image.ImageURL,
		PatientID: image.PatientID,
		ClinicID:  image.ClinicID,
	}
	if err := uc.EventPublisher.Publish(ctx, events.QueueImageUploaded, event); err != nil {
		return nil, err
	}

	return &responses.UploadImage{
		ImageID:    image.ID,
		ImageURL:   image.ImageURL,
		PatientID:  image.PatientID,
		ClinicID:   image.ClinicID,
		UploadedAt: image.UploadedAt,
	}, nil
}

func (uc *imageUsecase) ClinicImageStats(ctx context.Context, clinicID string) (*responses.ClinicImageStats, error) {
	count, err := uc.ImageRepository.CountByClinicID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	recent, err := uc.ImageRepository.FindRecentByClinicID(ctx, clinicID, recentImagesLimit)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -7)
	lastWeek, err := uc.ImageRepository.CountByClinicPerDay(ctx, clinicID, since)
	if err != nil {
		return nil, err
	}

	stats := &responses.ClinicImageStats{
		ClinicID:   clinicID,
		ImageCount: count,
	}
	for _, image := range recent {
		stats.Recent = append(stats.Recent, responses.UploadImage{
			ImageID:    image.ID,
			ImageURL:   image.ImageURL,
			PatientID:  image.PatientID,
			ClinicID:   image.ClinicID,
			UploadedAt: image.UploadedAt,
		})
	}
	for _, day := range lastWeek {
		stats.LastWeek = append(stats.LastWeek, responses.ImageDayCount{
			Date:  day.Date,
			Count: day.Count,
		})
	}
	return stats, nil
}

func (uc *imageUsecase) validateUpload(request *requests.UploadImage) error {
	maxBytes := uc.InternalConfig.Minio.ImageMaxUploadSizeInMB * 1024 * 1024
	if request.Size <= 0 || request.Size > maxBytes {
		return exceptions.ErrImageValidation(fmt.Errorf("file size %d exceeds limit %d", request.Size, maxBytes))
	}

	allowed := strings.Split(uc.InternalConfig.Minio.AllowedImageContentType, ",")
	for _, contentType := range allowed {
		if strings.TrimSpace(contentType) == request.ContentType {
			return nil
		}
	}
	return exceptions.ErrImageValidation(fmt.Errorf("content type %s not allowed", request.ContentType))
}
