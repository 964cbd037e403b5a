package models

import "time"

// ImageMetadata records a stored medical image. The binary itself lives in the
// media storage collaborator; only the durable URL and object id are kept.
type ImageMetadata struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	ClinicID   string    `json:"clinic_id"`
	ImageURL   string    `json:"image_url"`
	ObjectID   string    `json:"object_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ImageDayCount is one calendar day's upload volume for a clinic.
type ImageDayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
