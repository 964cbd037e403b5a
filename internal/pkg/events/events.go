// Package events is the single shared schema for integration events exchanged
// between the imaging, medical-record, billing and notification services.
// Every producer and consumer imports these types; no service redeclares its
// own copy of an event shape.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Queue names, one durable queue per event type.
const (
	QueueImageUploaded      = "aura_image_uploaded"
	QueueExaminationCreated = "aura_examination_created"
	QueueAnalysisCompleted  = "aura_analysis_completed"
	QueueDiagnosisVerified  = "aura_diagnosis_verified"
	QueueUserRegistered     = "aura_user_registered"
)

// Envelope carries the delivery identity shared by every integration event.
// EventID backs the consumer-side idempotency guard; OccurredAt is the moment
// the fact became true in the producing service.
type Envelope struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEnvelope() Envelope {
	return Envelope{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}
}

// ImageUploaded is published by the imaging service after media storage
// accepted the binary and metadata was persisted.
type ImageUploaded struct {
	Envelope
	ImageID   string `json:"image_id"`
	ImageURL  string `json:"image_url"`
	PatientID string `json:"patient_id"`
	ClinicID  string `json:"clinic_id"`
}

// ExaminationCreated is published by the medical-record service when a new
// examination enters the Pending state. Billing reacts with a fixed-fee bill.
type ExaminationCreated struct {
	Envelope
	ExaminationID string `json:"examination_id"`
	PatientID     string `json:"patient_id"`
	ClinicID      string `json:"clinic_id"`
}

// AnalysisCompleted is published when AI results are recorded against an
// examination. RiskLevel is compared case-sensitively against "High" by the
// notification consumer.
type AnalysisCompleted struct {
	Envelope
	ExaminationID string  `json:"examination_id"`
	ClinicID      string  `json:"clinic_id"`
	PatientID     string  `json:"patient_id"`
	RiskLevel     string  `json:"risk_level"`
	RiskScore     float64 `json:"risk_score"`
	Diagnosis     string  `json:"diagnosis"`
	HeatmapURL    string  `json:"heatmap_url"`
}

// DiagnosisVerified is published when a doctor confirms the final diagnosis.
type DiagnosisVerified struct {
	Envelope
	ExaminationID  string    `json:"examination_id"`
	PatientID      string    `json:"patient_id"`
	FinalDiagnosis string    `json:"final_diagnosis"`
	DoctorNotes    string    `json:"doctor_notes"`
	VerifiedAt     time.Time `json:"verified_at"`
}

// UserRegistered is published by the identity surface after account creation.
// The medical-record service provisions a default patient profile from it.
type UserRegistered struct {
	Envelope
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	ClinicID string `json:"clinic_id"`
}
