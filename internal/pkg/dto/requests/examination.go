package requests

import "time"

type CreateExamination struct {
	PatientID string    `json:"patient_id" validate:"required"`
	ClinicID  string    `json:"clinic_id" validate:"required"`
	ImageID   string    `json:"image_id" validate:"required"`
	ImageURL  string    `json:"image_url" validate:"required,url"`
	ExamDate  time.Time `json:"exam_date"`
}

type VerifyDiagnosis struct {
	ExaminationID  string `json:"-"`
	DoctorID       string `json:"-"`
	FinalDiagnosis string `json:"final_diagnosis" validate:"required"`
	DoctorNotes    string `json:"doctor_notes"`
}

type ApplyAnalysis struct {
	ExaminationID string  `json:"-"`
	Diagnosis     string  `json:"diagnosis" validate:"required"`
	RiskLevel     string  `json:"risk_level" validate:"required,risk_level"`
	RiskScore     float64 `json:"risk_score" validate:"min=0"`
	HeatmapURL    string  `json:"heatmap_url" validate:"omitempty,url"`
}

type ListExaminations struct {
	PatientID string
	ClinicID  string
	Status    string `validate:"omitempty,oneof=Pending Analyzed Verified"`
}
