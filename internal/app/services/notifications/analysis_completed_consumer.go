package notifications

import (
	"context"
	"fmt"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const analysisCompletedConsumerName = "notifications.analysis_completed"

// analysisPayload is the notification body for an analysis result.
type analysisPayload struct {
	ExaminationID string  `json:"examination_id"`
	PatientID     string  `json:"patient_id"`
	Diagnosis     string  `json:"diagnosis"`
	RiskLevel     string  `json:"risk_level"`
	RiskScore     float64 `json:"risk_score"`
	Message       string  `json:"message"`
}

// BuildAnalysisMessage picks the notification text for a finished analysis.
// The comparison against the High level is exact; "HIGH" or "high" get the
// routine wording.
func BuildAnalysisMessage(event *events.AnalysisCompleted) string {
	if event.RiskLevel == constvars.RiskLevelHigh {
		return fmt.Sprintf("URGENT: high risk finding for patient %s (%s). Immediate review required.",
			event.PatientID, event.Diagnosis)
	}
	return fmt.Sprintf("Analysis completed for patient %s: %s (risk %s).",
		event.PatientID, event.Diagnosis, event.RiskLevel)
}

// NewAnalysisCompletedConsumer pushes finished analyses to every connection in
// the examination's clinic group.
func NewAnalysisCompletedConsumer(
	pusher contracts.NotificationPusher,
	guard contracts.IdempotencyGuard,
	log *zap.Logger,
) contracts.EventHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.AnalysisCompleted
		if err := json.Unmarshal(body, &event); err != nil {
			log.Error("dropping malformed analysis-completed event", zap.Error(err))
			return nil
		}

		first, err := guard.FirstDelivery(ctx, analysisCompletedConsumerName, event.EventID)
		if err != nil {
			return err
		}
		if !first {
			return nil
		}

		groupName := fmt.Sprintf(constvars.ClinicGroupFormat, event.ClinicID)
		payload := analysisPayload{
			ExaminationID: event.ExaminationID,
			PatientID:     event.PatientID,
			Diagnosis:     event.Diagnosis,
			RiskLevel:     event.RiskLevel,
			RiskScore:     event.RiskScore,
			Message:       BuildAnalysisMessage(&event),
		}

		if err := pusher.SendToGroup(ctx, groupName, "analysis-completed", payload); err != nil {
			if releaseErr := guard.Release(ctx, analysisCompletedConsumerName, event.EventID); releaseErr != nil {
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
