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

	"go.uber.org/zap"
)

// maxMultipartMemory bounds how much of the upload is buffered in memory
// before spilling to disk.
const maxMultipartMemory = 12 << 20

type ImageController struct {
	Log          *zap.Logger
	ImageUsecase contracts.ImageUsecase
}

func NewImageController(logger *zap.Logger, imageUsecase contracts.ImageUsecase) *ImageController {
	return &ImageController{
		Log:          logger,
		ImageUsecase: imageUsecase,
	}
}

func (ctrl *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadImage{
		PatientID:   r.FormValue("patient_id"),
		ClinicID:    r.FormValue("clinic_id"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
		Reader:      file,
	}
	if request.ClinicID == "" {
		request.ClinicID, _ = r.Context().Value(constvars.ContextClinicIDKey).(string)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ImageUsecase.UploadImage(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadImageSuccessMessage, response)
}

func (ctrl *ImageController) Stats(w http.ResponseWriter, r *http.Request) {
	clinicID, _ := r.Context().Value(constvars.ContextClinicIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ImageUsecase.ClinicImageStats(ctx, clinicID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetImagingStatsSuccessMessage, response)
}
