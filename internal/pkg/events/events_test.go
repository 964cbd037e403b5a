package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wire field names are a cross-service contract. These tests pin the JSON keys
// so a rename in one service cannot silently break another's consumer.

func TestAnalysisCompletedWireFields(t *testing.T) {
	event := AnalysisCompleted{
		Envelope:      Envelope{EventID: "evt-1", OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		ExaminationID: "exam-1",
		ClinicID:      "clinic-1",
		PatientID:     "patient-1",
		RiskLevel:     "High",
		RiskScore:     0.92,
		Diagnosis:     "DR_Severe",
		HeatmapURL:    "https://cdn.example.com/heatmaps/exam-1.png",
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"event_id", "occurred_at", "examination_id", "clinic_id",
		"patient_id", "risk_level", "risk_score", "diagnosis", "heatmap_url",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "High", fields["risk_level"])
	assert.InDelta(t, 0.92, fields["risk_score"], 1e-9)
}

func TestImageUploadedWireFields(t *testing.T) {
	raw, err := json.Marshal(ImageUploaded{
		Envelope:  NewEnvelope(),
		ImageID:   "img-1",
		ImageURL:  "https://cdn.example.com/img-1.jpg",
		PatientID: "patient-1",
		ClinicID:  "clinic-1",
	})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{"event_id", "occurred_at", "image_id", "image_url", "patient_id", "clinic_id"} {
		assert.Contains(t, fields, key)
	}
}

func TestDiagnosisVerifiedWireFields(t *testing.T) {
	raw, err := json.Marshal(DiagnosisVerified{
		Envelope:       NewEnvelope(),
		ExaminationID:  "exam-1",
		PatientID:      "patient-1",
		FinalDiagnosis: "DR_Mild",
		DoctorNotes:    "reviewed",
		VerifiedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{"event_id", "examination_id", "patient_id", "final_diagnosis", "doctor_notes", "verified_at"} {
		assert.Contains(t, fields, key)
	}
}

func TestNewEnvelopeAssignsIdentity(t *testing.T) {
	first := NewEnvelope()
	second := NewEnvelope()

	assert.NotEmpty(t, first.EventID)
	assert.NotEqual(t, first.EventID, second.EventID)
	assert.False(t, first.OccurredAt.IsZero())
	assert.Equal(t, time.UTC, first.OccurredAt.Location())
}
