package models

import (
	"time"

	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/exceptions"
)

// ExaminationStatus is the three-stage lifecycle of a patient encounter.
// It only advances Pending -> Analyzed -> Verified; there is no regression.
type ExaminationStatus string

const (
	ExaminationPending  ExaminationStatus = constvars.ExaminationStatusPending
	ExaminationAnalyzed ExaminationStatus = constvars.ExaminationStatusAnalyzed
	ExaminationVerified ExaminationStatus = constvars.ExaminationStatusVerified
)

type Examination struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id"`
	DoctorID    string            `json:"doctor_id,omitempty"`
	ClinicID    string            `json:"clinic_id"`
	ImageID     string            `json:"image_id"`
	ImageURL    string            `json:"image_url"`
	ExamDate    time.Time         `json:"exam_date"`
	Status      ExaminationStatus `json:"status"`
	Diagnosis   string            `json:"diagnosis"`
	DoctorNotes string            `json:"doctor_notes"`

	// AI-produced fields, write-once until Analyzed, immutable after Verified.
	AiDiagnosis string  `json:"ai_diagnosis,omitempty"`
	AiRiskLevel string  `json:"ai_risk_level,omitempty"`
	AiRiskScore float64 `json:"ai_risk_score"`
	HeatmapURL  string  `json:"heatmap_url,omitempty"`
}

// AIResult is the payload the AI pipeline reports for a pending examination.
type AIResult struct {
	Diagnosis  string
	RiskLevel  string
	RiskScore  float64
	HeatmapURL string
}

// ApplyAIResult records the AI findings and advances Pending to Analyzed.
// The transition is legal only from Pending; every other state rejects the
// write with an invalid-transition error, including Verified, so a late or
// redelivered AI result can never overwrite a doctor-confirmed diagnosis.
func (e *Examination) ApplyAIResult(result AIResult) error {
	if e.Status != ExaminationPending {
		return exceptions.ErrExaminationInvalidTransition(nil)
	}

	e.AiDiagnosis = result.Diagnosis
	e.AiRiskLevel = result.RiskLevel
	e.AiRiskScore = NormalizeRiskScore(result.RiskScore)
	e.HeatmapURL = result.HeatmapURL
	e.Diagnosis = result.Diagnosis
	e.Status = ExaminationAnalyzed
	return nil
}

// VerifyByDoctor records the doctor's conclusion. Legal from Analyzed, which
// transitions to Verified, and from Verified, which lets the doctor correct an
// earlier conclusion while staying Verified. A Pending examination has nothing
// to verify and is rejected.
func (e *Examination) VerifyByDoctor(doctorID, doctorNotes, finalDiagnosis string) error {
	switch e.Status {
	case ExaminationAnalyzed, ExaminationVerified:
		e.DoctorID = doctorID
		e.DoctorNotes = doctorNotes
		e.Diagnosis = finalDiagnosis
		e.Status = ExaminationVerified
		return nil
	default:
		return exceptions.ErrExaminationInvalidTransition(nil)
	}
}

// NormalizeRiskScore maps scores reported on a 0-100 scale back into [0,1].
// Some AI pipeline versions report 45 where others report 0.45.
func NormalizeRiskScore(score float64) float64 {
	if score > 1 {
		return score / 100
	}
	return score
}

func NewExamination(id, patientID, clinicID, imageID, imageURL string, examDate time.Time) *Examination {
	return &Examination{
		ID:        id,
		PatientID: patientID,
		ClinicID:  clinicID,
		ImageID:   imageID,
		ImageURL:  imageURL,
		ExamDate:  examDate,
		Status:    ExaminationPending,
	}
}

// DisplayDiagnosis prefers the doctor-confirmed conclusion once Verified and
// falls back to the AI finding while the examination is still in review.
func (e *Examination) DisplayDiagnosis() string {
	if e.Status == ExaminationVerified {
		return e.Diagnosis
	}
	return e.AiDiagnosis
}
