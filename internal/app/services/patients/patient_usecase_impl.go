package patients

import (
	"context"
	"time"

	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
	"aura-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientPostgresRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientPostgresRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindByUserID(ctx context.Context, userID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", request.PatientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	patient.UpdateInfo(request.FullName, request.DateOfBirth, request.Gender, request.PhoneNumber, request.Address)
	if request.AvatarURL != "" {
		patient.AvatarURL = request.AvatarURL
	}

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) AddMedicalHistory(ctx context.Context, request *requests.AddMedicalHistory) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	diagnosedDate := request.DiagnosedDate
	if diagnosedDate.IsZero() {
		diagnosedDate = time.Now().UTC()
	}

	history := models.MedicalHistory{
		ID:            uuid.NewString(),
		PatientID:     patient.ID,
		Condition:     request.Condition,
		Description:   request.Description,
		DiagnosedDate: diagnosedDate,
	}

	if err := uc.PatientRepository.AddMedicalHistory(ctx, patient.ID, &history); err != nil {
		return nil, err
	}

	patient.MedicalHistories = append(patient.MedicalHistories, history)
	return buildPatientResponse(patient), nil
}

// CreateFromRegisteredUser provisions the default medical-record profile for a
// freshly registered patient account. Accounts with staff roles get none, and
// an already provisioned user is left untouched.
func (uc *patientUsecase) CreateFromRegisteredUser(ctx context.Context, event *events.UserRegistered) error {
	if event.Role != constvars.RolePatient {
		return nil
	}

	existing, err := uc.PatientRepository.FindByUserID(ctx, event.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		uc.Log.Debug("patient profile already provisioned",
			zap.String("user_id", event.UserID),
		)
		return nil
	}

	patient := &models.Patient{
		ID:       uuid.NewString(),
		UserID:   event.UserID,
		ClinicID: event.ClinicID,
		FullName: event.FullName,
	}
	return uc.PatientRepository.CreatePatient(ctx, patient)
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	response := &responses.Patient{
		ID:          patient.ID,
		UserID:      patient.UserID,
		ClinicID:    patient.ClinicID,
		FullName:    patient.FullName,
		Gender:      patient.Gender,
		PhoneNumber: patient.PhoneNumber,
		Address:     patient.Address,
		AvatarURL:   patient.AvatarURL,
	}
	if !patient.DateOfBirth.IsZero() {
		dateOfBirth := patient.DateOfBirth
		response.DateOfBirth = &dateOfBirth
	}
	for _, history := range patient.MedicalHistories {
		response.MedicalHistories = append(response.MedicalHistories, responses.MedicalHistory{
			ID:            history.ID,
			Condition:     history.Condition,
			Description:   history.Description,
			DiagnosedDate: history.DiagnosedDate,
		})
	}
	return response
}
