package responses

type RegisterUser struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClinicID string `json:"clinic_id,omitempty"`
}

type LoginUser struct {
	Token string `json:"token"`
}
