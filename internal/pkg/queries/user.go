package queries

const (
	GetUserByID = `
		SELECT id, email, password, full_name, role, clinic_id, created_at
		FROM users
		WHERE id = $1
	`

	GetUserByEmail = `
		SELECT id, email, password, full_name, role, clinic_id, created_at
		FROM users
		WHERE email = $1
	`

	InsertUser = `
		INSERT INTO users (id, email, password, full_name, role, clinic_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
)
