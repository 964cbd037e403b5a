package queries

const (
	GetExaminationByID = `
		SELECT id, patient_id, doctor_id, clinic_id, image_id, image_url, exam_date, status, diagnosis, doctor_notes, ai_diagnosis, ai_risk_level, ai_risk_score, heatmap_url
		FROM examinations
		WHERE id = $1
	`

	GetExaminationByImageID = `
		SELECT id, patient_id, doctor_id, clinic_id, image_id, image_url, exam_date, status, diagnosis, doctor_notes, ai_diagnosis, ai_risk_level, ai_risk_score, heatmap_url
		FROM examinations
		WHERE image_id = $1
	`

	GetExaminationsByPatientID = `
		SELECT id, patient_id, doctor_id, clinic_id, image_id, image_url, exam_date, status, diagnosis, doctor_notes, ai_diagnosis, ai_risk_level, ai_risk_score, heatmap_url
		FROM examinations
		WHERE patient_id = $1
		ORDER BY exam_date DESC
	`

	GetExaminationsByClinicID = `
		SELECT id, patient_id, doctor_id, clinic_id, image_id, image_url, exam_date, status, diagnosis, doctor_notes, ai_diagnosis, ai_risk_level, ai_risk_score, heatmap_url
		FROM examinations
		WHERE clinic_id = $1
		ORDER BY exam_date DESC
	`

	InsertExamination = `
		INSERT INTO examinations (id, patient_id, clinic_id, image_id, image_url, exam_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	UpdateExamination = `
		UPDATE examinations
		SET doctor_id = $1, status = $2, diagnosis = $3, doctor_notes = $4, ai_diagnosis = $5, ai_risk_level = $6, ai_risk_score = $7, heatmap_url = $8
		WHERE id = $9
	`
)
