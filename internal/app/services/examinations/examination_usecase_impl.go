package examinations

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

type examinationUsecase struct {
	ExaminationRepository contracts.ExaminationRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

func NewExaminationUsecase(
	examinationPostgresRepository contracts.ExaminationRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ExaminationUsecase {
	return &examinationUsecase{
		ExaminationRepository: examinationPostgresRepository,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *examinationUsecase) CreateExamination(ctx context.Context, request *requests.CreateExamination) (*responses.Examination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.CreateExamination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	examDate := request.ExamDate
	if examDate.IsZero() {
		examDate = time.Now().UTC()
	}

	examination := models.NewExamination(
		uuid.NewString(),
		request.PatientID,
		request.ClinicID,
		request.ImageID,
		request.ImageURL,
		examDate,
	)

	if err := uc.ExaminationRepository.CreateExamination(ctx, examination); err != nil {
		return nil, err
	}

	event := events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: examination.ID,
		PatientID:     examination.PatientID,
		ClinicID:      examination.ClinicID,
	}
	if err := uc.EventPublisher.Publish(ctx, events.QueueExaminationCreated, event); err != nil {
		return nil, err
	}

	return buildExaminationResponse(examination), nil
}

func (uc *examinationUsecase) FindByID(ctx context.Context, examinationID string) (*responses.Examination, error) {
	examination, err := uc.ExaminationRepository.FindByID(ctx, examinationID)
	if err != nil {
		return nil, err
	}
	if examination == nil {
		return nil, exceptions.ErrExaminationNotFound(nil)
	}
	return buildExaminationResponse(examination), nil
}

func (uc *examinationUsecase) FindAll(ctx context.Context, request *requests.ListExaminations) ([]responses.Examination, error) {
	var examinations []models.Examination
	var err error

	switch {
	case request.PatientID != "":
		examinations, err = uc.ExaminationRepository.FindByPatientID(ctx, request.PatientID)
	default:
		examinations, err = uc.ExaminationRepository.FindByClinicID(ctx, request.ClinicID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Examination, 0, len(examinations))
	for i := range examinations {
		if request.Status != "" && string(examinations[i].Status) != request.Status {
			continue
		}
		result = append(result, *buildExaminationResponse(&examinations[i]))
	}
	return result, nil
}

func (uc *examinationUsecase) VerifyDiagnosis(ctx context.Context, request *requests.VerifyDiagnosis) (*responses.Examination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.VerifyDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("examination_id", request.ExaminationID),
	)

	examination, err := uc.ExaminationRepository.FindByID(ctx, request.ExaminationID)
	if err != nil {
		return nil, err
	}
	if examination == nil {
		return nil, exceptions.ErrExaminationNotFound(nil)
	}

	if err := examination.VerifyByDoctor(request.DoctorID, request.DoctorNotes, request.FinalDiagnosis); err != nil {
		return nil, err
	}

	if err := uc.ExaminationRepository.UpdateExamination(ctx, examination); err != nil {
		return nil, err
	}

	event := events.DiagnosisVerified{
		Envelope:       events.NewEnvelope(),
		ExaminationID:  examination.ID,
		PatientID:      examination.PatientID,
		FinalDiagnosis: examination.Diagnosis,
		DoctorNotes:    examination.DoctorNotes,
		VerifiedAt:     time.Now().UTC(),
	}
	if err := uc.EventPublisher.Publish(ctx, events.QueueDiagnosisVerified, event); err != nil {
		return nil, err
	}

	return buildExaminationResponse(examination), nil
}

func (uc *examinationUsecase) ApplyAnalysisResult(ctx context.Context, request *requests.ApplyAnalysis) (*responses.Examination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.ApplyAnalysisResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("examination_id", request.ExaminationID),
	)

	examination, err := uc.ExaminationRepository.FindByID(ctx, request.ExaminationID)
	if err != nil {
		return nil, err
	}
	if examination == nil {
		return nil, exceptions.ErrExaminationNotFound(nil)
	}

	result := models.AIResult{
		Diagnosis:  request.Diagnosis,
		RiskLevel:  request.RiskLevel,
		RiskScore:  request.RiskScore,
		HeatmapURL: request.HeatmapURL,
	}
	if err := examination.ApplyAIResult(result); err != nil {
		return nil, err
	}

	if err := uc.ExaminationRepository.UpdateExamination(ctx, examination); err != nil {
		return nil, err
	}

	event := events.AnalysisCompleted{
		Envelope:      events.NewEnvelope(),
		ExaminationID: examination.ID,
		ClinicID:      examination.ClinicID,
		PatientID:     examination.PatientID,
		RiskLevel:     examination.AiRiskLevel,
		RiskScore:     examination.AiRiskScore,
		Diagnosis:     examination.AiDiagnosis,
		HeatmapURL:    examination.HeatmapURL,
	}
	if err := uc.EventPublisher.Publish(ctx, events.QueueAnalysisCompleted, event); err != nil {
		return nil, err
	}

	return buildExaminationResponse(examination), nil
}

func (uc *examinationUsecase) StatsSummary(ctx context.Context, clinicID string) (*responses.ExaminationStats, error) {
	examinations, err := uc.ExaminationRepository.FindByClinicID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	stats := &responses.ExaminationStats{ClinicID: clinicID, Total: len(examinations)}
	for i := range examinations {
		switch examinations[i].Status {
		case models.ExaminationPending:
			stats.Pending++
		case models.ExaminationAnalyzed:
			stats.Analyzed++
		case models.ExaminationVerified:
			stats.Verified++
		}
	}
	return stats, nil
}

// CreateFromUploadedImage provisions a Pending examination for a freshly
// uploaded image and announces it so billing can react. The image id is the
// natural key: a redelivery that already persisted an examination skips the
// insert and only republishes the announcement.
func (uc *examinationUsecase) CreateFromUploadedImage(ctx context.Context, event *events.ImageUploaded) error {
	examination, err := uc.ExaminationRepository.FindByImageID(ctx, event.ImageID)
	if err != nil {
		return err
	}
	if examination != nil {
		uc.Log.Debug("examination already exists for image",
			zap.String("image_id", event.ImageID),
			zap.String("examination_id", examination.ID),
		)
	} else {
		examination = models.NewExamination(
			uuid.NewString(),
			event.PatientID,
			event.ClinicID,
			event.ImageID,
			event.ImageURL,
			time.Now().UTC(),
		)
		if err := uc.ExaminationRepository.CreateExamination(ctx, examination); err != nil {
			return err
		}
	}

	created := events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: examination.ID,
		PatientID:     examination.PatientID,
		ClinicID:      examination.ClinicID,
	}
	return uc.EventPublisher.Publish(ctx, events.QueueExaminationCreated, created)
}

// buildExaminationResponse exposes the doctor-confirmed diagnosis once
// Verified and the AI finding while the examination is still in review.
func buildExaminationResponse(examination *models.Examination) *responses.Examination {
	return &responses.Examination{
		ID:          examination.ID,
		PatientID:   examination.PatientID,
		DoctorID:    examination.DoctorID,
		ClinicID:    examination.ClinicID,
		ImageID:     examination.ImageID,
		ImageURL:    examination.ImageURL,
		ExamDate:    examination.ExamDate,
		Status:      string(examination.Status),
		Diagnosis:   examination.DisplayDiagnosis(),
		DoctorNotes: examination.DoctorNotes,
		AiDiagnosis: examination.AiDiagnosis,
		AiRiskLevel: examination.AiRiskLevel,
		AiRiskScore: examination.AiRiskScore,
		HeatmapURL:  examination.HeatmapURL,
	}
}
