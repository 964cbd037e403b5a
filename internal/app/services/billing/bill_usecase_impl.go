package billing

import (
	"context"
	"time"

	"aura-service/internal/app/config"
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

type billUsecase struct {
	BillRepository contracts.BillRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewBillUsecase(
	billPostgresRepository contracts.BillRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BillUsecase {
	return &billUsecase{
		BillRepository: billPostgresRepository,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *billUsecase) CreateBill(ctx context.Context, request *requests.CreateBill) (*responses.Bill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.CreateBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bill := models.NewBill(uuid.NewString(), request.PatientID, request.ClinicID, request.ReferenceID, time.Now().UTC())
	for _, item := range request.Items {
		if err := bill.AddLineItem(uuid.NewString(), item.ServiceName, item.Price, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := uc.BillRepository.CreateBill(ctx, bill); err != nil {
		return nil, err
	}
	return buildBillResponse(bill), nil
}

func (uc *billUsecase) FindAll(ctx context.Context, request *requests.ListBills) ([]responses.Bill, error) {
	var bills []models.Bill
	var err error

	if request.PatientID != "" {
		bills, err = uc.BillRepository.FindByPatientID(ctx, request.PatientID)
	} else {
		bills, err = uc.BillRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Bill, 0, len(bills))
	for i := range bills {
		result = append(result, *buildBillResponse(&bills[i]))
	}
	return result, nil
}

func (uc *billUsecase) PayBill(ctx context.Context, billID string) (*responses.Bill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billUsecase.PayBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("bill_id", billID),
	)

	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotFound(nil)
	}

	if err := bill.Pay(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.BillRepository.UpdateBillPayment(ctx, bill); err != nil {
		return nil, err
	}
	return buildBillResponse(bill), nil
}

func (uc *billUsecase) RevenueChart(ctx context.Context, request *requests.RevenueChart) ([]responses.RevenuePoint, error) {
	days := request.Days
	if days <= 0 {
		days = uc.InternalConfig.App.RevenueChartWindowInDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	bills, err := uc.BillRepository.FindPaidSince(ctx, since)
	if err != nil {
		return nil, err
	}

	revenue := models.RevenueByDay(bills, since)
	points := make([]responses.RevenuePoint, 0, len(revenue))
	for _, day := range revenue {
		points = append(points, responses.RevenuePoint{
			Date:      day.Date,
			PaidCount: day.PaidCount,
			Total:     day.Total,
		})
	}
	return points, nil
}

// CreateExaminationFeeBill reactively bills the fixed examination fee. The
// examination id is the natural reference key, so a redelivered event finds
// the existing bill and does nothing.
func (uc *billUsecase) CreateExaminationFeeBill(ctx context.Context, event *events.ExaminationCreated) error {
	existing, err := uc.BillRepository.FindByReferenceID(ctx, event.ExaminationID)
	if err != nil {
		return err
	}
	if existing != nil {
		uc.Log.Debug("examination fee bill already exists",
			zap.String("examination_id", event.ExaminationID),
		)
		return nil
	}

	bill := models.NewBill(uuid.NewString(), event.PatientID, event.ClinicID, event.ExaminationID, time.Now().UTC())
	err = bill.AddLineItem(
		uuid.NewString(),
		constvars.ExaminationFeeServiceName,
		uc.InternalConfig.Billing.ExaminationFeeAmount,
		1,
	)
	if err != nil {
		return err
	}

	return uc.BillRepository.CreateBill(ctx, bill)
}

func buildBillResponse(bill *models.Bill) *responses.Bill {
	items := make([]responses.BillItem, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, responses.BillItem{
			ID:          item.ID,
			ServiceName: item.ServiceName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}
	return &responses.Bill{
		ID:          bill.ID,
		PatientID:   bill.PatientID,
		ClinicID:    bill.ClinicID,
		Items:       items,
		TotalAmount: bill.TotalAmount,
		Status:      string(bill.Status),
		CreatedAt:   bill.CreatedAt,
		PaidAt:      bill.PaidAt,
		ReferenceID: bill.ReferenceID,
	}
}
