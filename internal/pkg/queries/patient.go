package queries

const (
	GetPatientByID = `
		SELECT id, user_id, clinic_id, full_name, date_of_birth, gender, phone_number, address, avatar_url
		FROM patients
		WHERE id = $1
	`

	GetPatientByUserID = `
		SELECT id, user_id, clinic_id, full_name, date_of_birth, gender, phone_number, address, avatar_url
		FROM patients
		WHERE user_id = $1
	`

	InsertPatient = `
		INSERT INTO patients (id, user_id, clinic_id, full_name)
		VALUES ($1, $2, $3, $4)
	`

	UpdatePatient = `
		UPDATE patients
		SET full_name = $1, date_of_birth = $2, gender = $3, phone_number = $4, address = $5, avatar_url = $6
		WHERE id = $7
	`

	GetMedicalHistoriesByPatientID = `
		SELECT id, patient_id, condition, description, diagnosed_date
		FROM medical_histories
		WHERE patient_id = $1
		ORDER BY diagnosed_date ASC
	`

	InsertMedicalHistory = `
		INSERT INTO medical_histories (id, patient_id, condition, description, diagnosed_date)
		VALUES ($1, $2, $3, $4, $5)
	`
)
