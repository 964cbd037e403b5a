package models

import "time"

// User is the identity-service account. The medical-record Patient profile is
// a separate aggregate keyed back to this record through its UserID field.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	ClinicID  string    `json:"clinic_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
