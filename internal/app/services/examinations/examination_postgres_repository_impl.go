package examinations

import (
	"context"
	"database/sql"

	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/queries"
)

type examinationPostgresRepository struct {
	DB *sql.DB
}

func NewExaminationPostgresRepository(db *sql.DB) contracts.ExaminationRepository {
	return &examinationPostgresRepository{
		DB: db,
	}
}

func (repo *examinationPostgresRepository) FindByID(ctx context.Context, examinationID string) (*models.Examination, error) {
	return repo.findOne(ctx, queries.GetExaminationByID, examinationID)
}

func (repo *examinationPostgresRepository) FindByImageID(ctx context.Context, imageID string) (*models.Examination, error) {
	return repo.findOne(ctx, queries.GetExaminationByImageID, imageID)
}

func (repo *examinationPostgresRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.Examination, error) {
	var examination models.Examination
	var doctorID, diagnosis, doctorNotes, aiDiagnosis, aiRiskLevel, heatmapURL sql.NullString
	var aiRiskScore sql.NullFloat64

	err := repo.DB.QueryRowContext(ctx, query, arg).Scan(
		&examination.ID,
		&examination.PatientID,
		&doctorID,
		&examination.ClinicID,
		&examination.ImageID,
		&examination.ImageURL,
		&examination.ExamDate,
		&examination.Status,
		&diagnosis,
		&doctorNotes,
		&aiDiagnosis,
		&aiRiskLevel,
		&aiRiskScore,
		&heatmapURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	examination.DoctorID = doctorID.String
	examination.Diagnosis = diagnosis.String
	examination.DoctorNotes = doctorNotes.String
	examination.AiDiagnosis = aiDiagnosis.String
	examination.AiRiskLevel = aiRiskLevel.String
	examination.AiRiskScore = aiRiskScore.Float64
	examination.HeatmapURL = heatmapURL.String
	return &examination, nil
}

func (repo *examinationPostgresRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Examination, error) {
	return repo.findAll(ctx, queries.GetExaminationsByPatientID, patientID)
}

func (repo *examinationPostgresRepository) FindByClinicID(ctx context.Context, clinicID string) ([]models.Examination, error) {
	return repo.findAll(ctx, queries.GetExaminationsByClinicID, clinicID)
}

func (repo *examinationPostgresRepository) findAll(ctx context.Context, query string, arg interface{}) ([]models.Examination, error) {
	rows, err := repo.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var examinations []models.Examination
	for rows.Next() {
		var model models.Examination
		var doctorID, diagnosis, doctorNotes, aiDiagnosis, aiRiskLevel, heatmapURL sql.NullString
		var aiRiskScore sql.NullFloat64
		if err := rows.Scan(
			&model.ID,
			&model.PatientID,
			&doctorID,
			&model.ClinicID,
			&model.ImageID,
			&model.ImageURL,
			&model.ExamDate,
			&model.Status,
			&diagnosis,
			&doctorNotes,
			&aiDiagnosis,
			&aiRiskLevel,
			&aiRiskScore,
			&heatmapURL,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		model.DoctorID = doctorID.String
		model.Diagnosis = diagnosis.String
		model.DoctorNotes = doctorNotes.String
		model.AiDiagnosis = aiDiagnosis.String
		model.AiRiskLevel = aiRiskLevel.String
		model.AiRiskScore = aiRiskScore.Float64
		model.HeatmapURL = heatmapURL.String
		examinations = append(examinations, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return examinations, nil
}

func (repo *examinationPostgresRepository) CreateExamination(ctx context.Context, examination *models.Examination) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertExamination,
		examination.ID,
		examination.PatientID,
		examination.ClinicID,
		examination.ImageID,
		examination.ImageURL,
		examination.ExamDate,
		examination.Status,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *examinationPostgresRepository) UpdateExamination(ctx context.Context, examination *models.Examination) error {
	_, err := repo.DB.ExecContext(ctx, queries.UpdateExamination,
		examination.DoctorID,
		examination.Status,
		examination.Diagnosis,
		examination.DoctorNotes,
		examination.AiDiagnosis,
		examination.AiRiskLevel,
		examination.AiRiskScore,
		examination.HeatmapURL,
		examination.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
