package responses

import "time"

type MedicalHistory struct {
	ID            string    `json:"id"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description,omitempty"`
	DiagnosedDate time.Time `json:"diagnosed_date"`
}

type Patient struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	ClinicID         string           `json:"clinic_id,omitempty"`
	FullName         string           `json:"full_name"`
	DateOfBirth      *time.Time       `json:"date_of_birth,omitempty"`
	Gender           string           `json:"gender,omitempty"`
	PhoneNumber      string           `json:"phone_number,omitempty"`
	Address          string           `json:"address,omitempty"`
	AvatarURL        string           `json:"avatar_url,omitempty"`
	MedicalHistories []MedicalHistory `json:"medical_histories,omitempty"`
}
