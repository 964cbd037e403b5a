package controllers

import (
	"context"
	"net/http"
	"time"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ExaminationController struct {
	Log                *zap.Logger
	ExaminationUsecase contracts.ExaminationUsecase
}

func NewExaminationController(logger *zap.Logger, examinationUsecase contracts.ExaminationUsecase) *ExaminationController {
	return &ExaminationController{
		Log:                logger,
		ExaminationUsecase: examinationUsecase,
	}
}

func (ctrl *ExaminationController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateExamination)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ExaminationUsecase.CreateExamination(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateExaminationSuccessMessage, response)
}

func (ctrl *ExaminationController) FindByID(w http.ResponseWriter, r *http.Request) {
	examinationID := chi.URLParam(r, "examinationID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ExaminationUsecase.FindByID(ctx, examinationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExaminationSuccessMessage, response)
}

func (ctrl *ExaminationController) FindAll(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListExaminations{
		PatientID: r.URL.Query().Get("patient_id"),
		Status:    r.URL.Query().Get("status"),
	}
	request.ClinicID, _ = r.Context().Value(constvars.ContextClinicIDKey).(string)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ExaminationUsecase.FindAll(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExaminationQueueSuccessMessage, response)
}

func (ctrl *ExaminationController) UpdateAIResult(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ApplyAnalysis)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ExaminationID = chi.URLParam(r, "examinationID")

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ExaminationUsecase.ApplyAnalysisResult(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAiResultSuccessMessage, response)
}

func (ctrl *ExaminationController) Verify(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyDiagnosis)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ExaminationID = chi.URLParam(r, "examinationID")
	request.DoctorID, _ = r.Context().Value(constvars.ContextUserIDKey).(string)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ExaminationUsecase.VerifyDiagnosis(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyExaminationSuccessMessage, response)
}

func (ctrl *ExaminationController) Stats(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := r.Context().Value(constvars.ContextClinicIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ExaminationUsecase.StatsSummary(ctx, clinicID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExaminationStatsSuccessMessage, response)
}
