package notifications

import (
	"context"
	"testing"

	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNotificationPusher struct {
	mock.Mock
}

func (m *MockNotificationPusher) SendToUser(ctx context.Context, userID, eventName string, payload interface{}) error {
	args := m.Called(ctx, userID, eventName, payload)
	return args.Error(0)
}

func (m *MockNotificationPusher) SendToGroup(ctx context.Context, groupName, eventName string, payload interface{}) error {
	args := m.Called(ctx, groupName, eventName, payload)
	return args.Error(0)
}

type MockIdempotencyGuard struct {
	mock.Mock
}

func (m *MockIdempotencyGuard) FirstDelivery(ctx context.Context, consumerName, eventID string) (bool, error) {
	args := m.Called(ctx, consumerName, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyGuard) Release(ctx context.Context, consumerName, eventID string) error {
	args := m.Called(ctx, consumerName, eventID)
	return args.Error(0)
}

func TestBuildAnalysisMessage(t *testing.T) {
	testCases := []struct {
		name      string
		riskLevel string
		expected  string
	}{
		{
			name:      "high risk uses urgent wording",
			riskLevel: "High",
			expected:  "URGENT: high risk finding for patient patient-1 (Severe NPDR). Immediate review required.",
		},
		{
			name:      "low risk uses routine wording",
			riskLevel: "Low",
			expected:  "Analysis completed for patient patient-1: Severe NPDR (risk Low).",
		},
		{
			name:      "uppercase HIGH does not match the urgent branch",
			riskLevel: "HIGH",
			expected:  "Analysis completed for patient patient-1: Severe NPDR (risk HIGH).",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := &events.AnalysisCompleted{
				PatientID: "patient-1",
				Diagnosis: "Severe NPDR",
				RiskLevel: tc.riskLevel,
			}
			assert.Equal(t, tc.expected, BuildAnalysisMessage(event))
		})
	}
}

func TestAnalysisCompletedConsumer_PushesToClinicGroup(t *testing.T) {
	pusher := new(MockNotificationPusher)
	guard := new(MockIdempotencyGuard)
	handler := NewAnalysisCompletedConsumer(pusher, guard, zap.NewNop())

	event := events.AnalysisCompleted{
		Envelope:      events.NewEnvelope(),
		ExaminationID: "exam-1",
		ClinicID:      "clinic-1",
		PatientID:     "patient-1",
		RiskLevel:     "High",
		RiskScore:     0.91,
		Diagnosis:     "Severe NPDR",
	}
	body, _ := json.Marshal(event)

	guard.On("FirstDelivery", mock.Anything, "notifications.analysis_completed", event.EventID).Return(true, nil)
	pusher.On("SendToGroup", mock.Anything, "Clinic_clinic-1", "analysis-completed", mock.MatchedBy(func(payload interface{}) bool {
		p, ok := payload.(analysisPayload)
		return ok && p.ExaminationID == "exam-1" && p.RiskScore == 0.91 &&
			p.Message == "URGENT: high risk finding for patient patient-1 (Severe NPDR). Immediate review required."
	})).Return(nil)

	err := handler(context.Background(), body)

	assert.NoError(t, err)
	pusher.AssertExpectations(t)
	guard.AssertExpectations(t)
}

func TestAnalysisCompletedConsumer_DuplicateDeliverySkipsPush(t *testing.T) {
	pusher := new(MockNotificationPusher)
	guard := new(MockIdempotencyGuard)
	handler := NewAnalysisCompletedConsumer(pusher, guard, zap.NewNop())

	event := events.AnalysisCompleted{
		Envelope: events.NewEnvelope(),
		ClinicID: "clinic-1",
	}
	body, _ := json.Marshal(event)

	guard.On("FirstDelivery", mock.Anything, "notifications.analysis_completed", event.EventID).Return(false, nil)

	err := handler(context.Background(), body)

	assert.NoError(t, err)
	pusher.AssertNotCalled(t, "SendToGroup")
}

func TestAnalysisCompletedConsumer_MalformedBodyIsAcked(t *testing.T) {
	pusher := new(MockNotificationPusher)
	guard := new(MockIdempotencyGuard)
	handler := NewAnalysisCompletedConsumer(pusher, guard, zap.NewNop())

	err := handler(context.Background(), []byte("{not json"))

	assert.NoError(t, err, "poison messages must be acked, not requeued")
	guard.AssertNotCalled(t, "FirstDelivery")
	pusher.AssertNotCalled(t, "SendToGroup")
}

func TestDiagnosisVerifiedConsumer_ReleasesClaimOnPushFailure(t *testing.T) {
	pusher := new(MockNotificationPusher)
	guard := new(MockIdempotencyGuard)
	handler := NewDiagnosisVerifiedConsumer(pusher, guard, zap.NewNop())

	event := events.DiagnosisVerified{
		Envelope:       events.NewEnvelope(),
		ExaminationID:  "exam-1",
		PatientID:      "patient-1",
		FinalDiagnosis: "Moderate NPDR",
	}
	body, _ := json.Marshal(event)

	guard.On("FirstDelivery", mock.Anything, "notifications.diagnosis_verified", event.EventID).Return(true, nil)
	pusher.On("SendToUser", mock.Anything, "patient-1", "diagnosis-verified", mock.Anything).Return(assert.AnError)
	guard.On("Release", mock.Anything, "notifications.diagnosis_verified", event.EventID).Return(nil)

	err := handler(context.Background(), body)

	assert.Error(t, err)
	guard.AssertExpectations(t)
}
