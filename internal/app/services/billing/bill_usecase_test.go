package billing

import (
	"context"
	"testing"
	"time"

	"aura-service/internal/app/config"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/events"
	"aura-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByReferenceID(ctx context.Context, referenceID string) (*models.Bill, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindPaidSince(ctx context.Context, since time.Time) ([]models.Bill, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBillPayment(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			RevenueChartWindowInDays: 7,
		},
		Billing: config.AppBilling{
			ExaminationFeeAmount: 50000,
		},
	}
}

func TestBillUsecase_CreateExaminationFeeBill(t *testing.T) {
	repository := new(MockBillRepository)
	usecase := NewBillUsecase(repository, testInternalConfig(), zap.NewNop())

	event := &events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: "exam-1",
		PatientID:     "patient-1",
		ClinicID:      "clinic-1",
	}

	repository.On("FindByReferenceID", mock.Anything, "exam-1").Return(nil, nil)
	repository.On("CreateBill", mock.Anything, mock.MatchedBy(func(bill *models.Bill) bool {
		return bill.ReferenceID == "exam-1" &&
			bill.PatientID == "patient-1" &&
			bill.TotalAmount == 50000 &&
			len(bill.Items) == 1 &&
			bill.Items[0].ServiceName == constvars.ExaminationFeeServiceName &&
			bill.Status == models.BillPending
	})).Return(nil)

	err := usecase.CreateExaminationFeeBill(context.Background(), event)

	assert.NoError(t, err)
	repository.AssertExpectations(t)
}

func TestBillUsecase_CreateExaminationFeeBill_ExistingReferenceSkips(t *testing.T) {
	repository := new(MockBillRepository)
	usecase := NewBillUsecase(repository, testInternalConfig(), zap.NewNop())

	existing := models.NewBill("bill-1", "patient-1", "clinic-1", "exam-1", time.Now().UTC())
	repository.On("FindByReferenceID", mock.Anything, "exam-1").Return(existing, nil)

	err := usecase.CreateExaminationFeeBill(context.Background(), &events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: "exam-1",
	})

	assert.NoError(t, err)
	repository.AssertNotCalled(t, "CreateBill")
}

func TestBillUsecase_PayBill_NotFound(t *testing.T) {
	repository := new(MockBillRepository)
	usecase := NewBillUsecase(repository, testInternalConfig(), zap.NewNop())

	repository.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := usecase.PayBill(context.Background(), "missing")

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	repository.AssertNotCalled(t, "UpdateBillPayment")
}

func TestBillUsecase_PayBill_AlreadyPaid(t *testing.T) {
	repository := new(MockBillRepository)
	usecase := NewBillUsecase(repository, testInternalConfig(), zap.NewNop())

	bill := models.NewBill("bill-1", "patient-1", "clinic-1", "", time.Now().UTC())
	assert.NoError(t, bill.AddLineItem("item-1", "Consultation", 75000, 1))
	assert.NoError(t, bill.Pay(time.Now().UTC()))

	repository.On("FindByID", mock.Anything, "bill-1").Return(bill, nil)

	_, err := usecase.PayBill(context.Background(), "bill-1")

	assert.Error(t, err)
	repository.AssertNotCalled(t, "UpdateBillPayment")
}
