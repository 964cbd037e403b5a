package controllers

import (
	"context"
	"net/http"
	"strconv"
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

type BillController struct {
	Log         *zap.Logger
	BillUsecase contracts.BillUsecase
}

func NewBillController(logger *zap.Logger, billUsecase contracts.BillUsecase) *BillController {
	return &BillController{
		Log:         logger,
		BillUsecase: billUsecase,
	}
}

func (ctrl *BillController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBill)
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

	if request.ClinicID == "" {
		request.ClinicID, _ = r.Context().Value(constvars.ContextClinicIDKey).(string)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BillUsecase.CreateBill(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBillSuccessMessage, response)
}

func (ctrl *BillController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.ListBills{
		PatientID: r.URL.Query().Get("patient_id"),
	}
	request.ClinicID, _ = r.Context().Value(constvars.ContextClinicIDKey).(string)

	response, err := ctrl.BillUsecase.FindAll(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBillsSuccessMessage, response)
}

func (ctrl *BillController) Pay(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "billID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BillUsecase.PayBill(ctx, billID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PayBillSuccessMessage, response)
}

func (ctrl *BillController) RevenueChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	request := &requests.RevenueChart{Days: days}
	request.ClinicID, _ = r.Context().Value(constvars.ContextClinicIDKey).(string)

	response, err := ctrl.BillUsecase.RevenueChart(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRevenueChartSuccessMessage, response)
}
