package patients

import (
	"context"
	"database/sql"

	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/queries"
)

type patientPostgresRepository struct {
	DB *sql.DB
}

func NewPatientPostgresRepository(db *sql.DB) contracts.PatientRepository {
	return &patientPostgresRepository{
		DB: db,
	}
}

func (repo *patientPostgresRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return repo.findOne(ctx, queries.GetPatientByID, patientID)
}

func (repo *patientPostgresRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return repo.findOne(ctx, queries.GetPatientByUserID, userID)
}

func (repo *patientPostgresRepository) findOne(ctx context.Context, query, arg string) (*models.Patient, error) {
	var patient models.Patient
	var clinicID, gender, phoneNumber, address, avatarURL sql.NullString
	var dateOfBirth sql.NullTime

	err := repo.DB.QueryRowContext(ctx, query, arg).Scan(
		&patient.ID,
		&patient.UserID,
		&clinicID,
		&patient.FullName,
		&dateOfBirth,
		&gender,
		&phoneNumber,
		&address,
		&avatarURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	patient.ClinicID = clinicID.String
	patient.DateOfBirth = dateOfBirth.Time
	patient.Gender = gender.String
	patient.PhoneNumber = phoneNumber.String
	patient.Address = address.String
	patient.AvatarURL = avatarURL.String

	if err := repo.loadMedicalHistories(ctx, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (repo *patientPostgresRepository) loadMedicalHistories(ctx context.Context, patient *models.Patient) error {
	rows, err := repo.DB.QueryContext(ctx, queries.GetMedicalHistoriesByPatientID, patient.ID)
	if err != nil {
		return exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	for rows.Next() {
		var history models.MedicalHistory
		var description sql.NullString
		if err := rows.Scan(
			&history.ID,
			&history.PatientID,
			&history.Condition,
			&description,
			&history.DiagnosedDate,
		); err != nil {
			return exceptions.ErrPostgresDBFindData(err)
		}
		history.Description = description.String
		patient.MedicalHistories = append(patient.MedicalHistories, history)
	}
	return rows.Err()
}

func (repo *patientPostgresRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertPatient,
		patient.ID,
		patient.UserID,
		patient.ClinicID,
		patient.FullName,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *patientPostgresRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	_, err := repo.DB.ExecContext(ctx, queries.UpdatePatient,
		patient.FullName,
		patient.DateOfBirth,
		patient.Gender,
		patient.PhoneNumber,
		patient.Address,
		patient.AvatarURL,
		patient.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *patientPostgresRepository) AddMedicalHistory(ctx context.Context, patientID string, history *models.MedicalHistory) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertMedicalHistory,
		history.ID,
		patientID,
		history.Condition,
		history.Description,
		history.DiagnosedDate,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}
