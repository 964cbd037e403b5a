package responses

import "time"

type Examination struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id,omitempty"`
	ClinicID    string    `json:"clinic_id"`
	ImageID     string    `json:"image_id"`
	ImageURL    string    `json:"image_url"`
	ExamDate    time.Time `json:"exam_date"`
	Status      string    `json:"status"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	DoctorNotes string    `json:"doctor_notes,omitempty"`
	AiDiagnosis string    `json:"ai_diagnosis,omitempty"`
	AiRiskLevel string    `json:"ai_risk_level,omitempty"`
	AiRiskScore float64   `json:"ai_risk_score,omitempty"`
	HeatmapURL  string    `json:"heatmap_url,omitempty"`
}

type ExaminationStats struct {
	ClinicID string `json:"clinic_id"`
	Total    int    `json:"total"`
	Pending  int    `json:"pending"`
	Analyzed int    `json:"analyzed"`
	Verified int    `json:"verified"`
}
