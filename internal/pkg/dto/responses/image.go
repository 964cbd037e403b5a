package responses

import "time"

type UploadImage struct {
	ImageID    string    `json:"image_id"`
	ImageURL   string    `json:"image_url"`
	PatientID  string    `json:"patient_id"`
	ClinicID   string    `json:"clinic_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ImageDayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ClinicImageStats struct {
	ClinicID   string          `json:"clinic_id"`
	ImageCount int64           `json:"image_count"`
	Recent     []UploadImage   `json:"recent"`
	LastWeek   []ImageDayCount `json:"last_week"`
}
