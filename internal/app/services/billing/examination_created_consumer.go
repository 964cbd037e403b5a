package billing

import (
	"context"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const examinationCreatedConsumerName = "billing.examination_created"

// NewExaminationCreatedConsumer creates the fixed examination fee bill when a
// new examination is announced. The usecase is additionally idempotent on the
// examination reference id, so a duplicate delivery that slips past the guard
// still cannot double-bill.
func NewExaminationCreatedConsumer(
	billUsecase contracts.BillUsecase,
	guard contracts.IdempotencyGuard,
	log *zap.Logger,
) contracts.EventHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.ExaminationCreated
		if err := json.Unmarshal(body, &event); err != nil {
			log.Error("dropping malformed examination-created event", zap.Error(err))
			return nil
		}

		first, err := guard.FirstDelivery(ctx, examinationCreatedConsumerName, event.EventID)
		if err != nil {
			return err
		}
		if !first {
			log.Debug("skipping already handled examination-created event",
				zap.String("event_id", event.EventID),
			)
			return nil
		}

		if err := billUsecase.CreateExaminationFeeBill(ctx, &event); err != nil {
			if releaseErr := guard.Release(ctx, examinationCreatedConsumerName, event.EventID); releaseErr != nil {
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
