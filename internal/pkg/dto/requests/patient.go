package requests

import "time"

type UpdatePatient struct {
	PatientID   string    `json:"-"`
	FullName    string    `json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender" validate:"omitempty,oneof=male female other"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	AvatarURL   string    `json:"avatar_url" validate:"omitempty,url"`
}

type AddMedicalHistory struct {
	PatientID     string    `json:"-"`
	Condition     string    `json:"condition" validate:"required"`
	Description   string    `json:"description"`
	DiagnosedDate time.Time `json:"diagnosed_date"`
}
