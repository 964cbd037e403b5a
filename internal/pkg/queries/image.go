package queries

const (
	GetImageByID = `
		SELECT id, patient_id, clinic_id, image_url, object_id, uploaded_at
		FROM images
		WHERE id = $1
	`

	InsertImage = `
		INSERT INTO images (id, patient_id, clinic_id, image_url, object_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	CountImagesByClinicID = `
		SELECT COUNT(id)
		FROM images
		WHERE clinic_id = $1
	`

	GetRecentImagesByClinicID = `
		SELECT id, patient_id, clinic_id, image_url, object_id, uploaded_at
		FROM images
		WHERE clinic_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2
	`

	CountImagesByClinicPerDay = `
		SELECT DATE(uploaded_at) AS day, COUNT(id)
		FROM images
		WHERE clinic_id = $1 AND uploaded_at >= $2
		GROUP BY day
		ORDER BY day ASC
	`
)
