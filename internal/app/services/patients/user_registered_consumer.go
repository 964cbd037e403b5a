package patients

import (
	"context"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const userRegisteredConsumerName = "patients.user_registered"

// NewUserRegisteredConsumer provisions a patient profile for every registered
// patient account, exactly once per event id.
func NewUserRegisteredConsumer(
	patientUsecase contracts.PatientUsecase,
	guard contracts.IdempotencyGuard,
	log *zap.Logger,
) contracts.EventHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.UserRegistered
		if err := json.Unmarshal(body, &event); err != nil {
			log.Error("dropping malformed user-registered event", zap.Error(err))
			return nil
		}

		first, err := guard.FirstDelivery(ctx, userRegisteredConsumerName, event.EventID)
		if err != nil {
			return err
		}
		if !first {
			log.Debug("skipping already handled user-registered event",
				zap.String("event_id", event.EventID),
			)
			return nil
		}

		if err := patientUsecase.CreateFromRegisteredUser(ctx, &event); err != nil {
			if releaseErr := guard.Release(ctx, userRegisteredConsumerName, event.EventID); releaseErr != nil {
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
