package models

import "time"

// Patient is the medical-record profile, distinct from the identity-service
// user it references through UserID. One profile exists per identity user.
type Patient struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ClinicID    string    `json:"clinic_id"`
	FullName    string    `json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	AvatarURL   string    `json:"avatar_url,omitempty"`

	MedicalHistories []MedicalHistory `json:"medical_histories,omitempty"`
}

// MedicalHistory entries are append-only; there is no update or delete path.
type MedicalHistory struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description"`
	DiagnosedDate time.Time `json:"diagnosed_date"`
}

func (p *Patient) UpdateInfo(fullName string, dateOfBirth time.Time, gender, phoneNumber, address string) {
	p.FullName = fullName
	p.DateOfBirth = dateOfBirth
	p.Gender = gender
	p.PhoneNumber = phoneNumber
	p.Address = address
}

func (p *Patient) Age(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
