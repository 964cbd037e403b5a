package notifications

import (
	"context"
	"fmt"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const diagnosisVerifiedConsumerName = "notifications.diagnosis_verified"

type diagnosisPayload struct {
	ExaminationID  string `json:"examination_id"`
	FinalDiagnosis string `json:"final_diagnosis"`
	DoctorNotes    string `json:"doctor_notes,omitempty"`
	Message        string `json:"message"`
}

// NewDiagnosisVerifiedConsumer notifies the patient that a doctor confirmed
// their diagnosis. An offline patient only produces a log line; the event is
// still acked.
func NewDiagnosisVerifiedConsumer(
	pusher contracts.NotificationPusher,
	guard contracts.IdempotencyGuard,
	log *zap.Logger,
) contracts.EventHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.DiagnosisVerified
		if err := json.Unmarshal(body, &event); err != nil {
			log.Error("dropping malformed diagnosis-verified event", zap.Error(err))
			return nil
		}

		first, err := guard.FirstDelivery(ctx, diagnosisVerifiedConsumerName, event.EventID)
		if err != nil {
			return err
		}
		if !first {
			return nil
		}

		payload := diagnosisPayload{
			ExaminationID:  event.ExaminationID,
			FinalDiagnosis: event.FinalDiagnosis,
			DoctorNotes:    event.DoctorNotes,
			Message:        fmt.Sprintf("Your diagnosis has been verified by a doctor: %s.", event.FinalDiagnosis),
		}

		if err := pusher.SendToUser(ctx, event.PatientID, "diagnosis-verified", payload); err != nil {
			if releaseErr := guard.Release(ctx, diagnosisVerifiedConsumerName, event.EventID); releaseErr != nil {
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
