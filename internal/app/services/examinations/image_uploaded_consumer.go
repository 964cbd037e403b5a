package examinations

import (
	"context"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const imageUploadedConsumerName = "examinations.image_uploaded"

// NewImageUploadedConsumer creates a Pending examination for every uploaded
// image, exactly once per event id.
func NewImageUploadedConsumer(
	examinationUsecase contracts.ExaminationUsecase,
	guard contracts.IdempotencyGuard,
	log *zap.Logger,
) contracts.EventHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.ImageUploaded
		if err := json.Unmarshal(body, &event); err != nil {
			log.Error("dropping malformed image-uploaded event", zap.Error(err))
			return nil
		}

		first, err := guard.FirstDelivery(ctx, imageUploadedConsumerName, event.EventID)
		if err != nil {
			return err
		}
		if !first {
			log.Debug("skipping already handled image-uploaded event",
				zap.String("event_id", event.EventID),
			)
			return nil
		}

		if err := examinationUsecase.CreateFromUploadedImage(ctx, &event); err != nil {
			if releaseErr := guard.Release(ctx, imageUploadedConsumerName, event.EventID); releaseErr != nil {
				log.Error("failed to release idempotency claim",
					zap.String("event_id", event.EventID),
					zap.Error(releaseErr),
				)
			}
			return err
		}
		return nil
	}
}
