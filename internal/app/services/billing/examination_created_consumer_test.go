package billing

import (
	"context"
	"testing"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBillUsecase struct {
	mock.Mock
}

func (m *MockBillUsecase) CreateBill(ctx context.Context, request *requests.CreateBill) (*responses.Bill, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Bill), args.Error(1)
}

func (m *MockBillUsecase) FindAll(ctx context.Context, request *requests.ListBills) ([]responses.Bill, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Bill), args.Error(1)
}

func (m *MockBillUsecase) PayBill(ctx context.Context, billID string) (*responses.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Bill), args.Error(1)
}

func (m *MockBillUsecase) RevenueChart(ctx context.Context, request *requests.RevenueChart) ([]responses.RevenuePoint, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.RevenuePoint), args.Error(1)
}

func (m *MockBillUsecase) CreateExaminationFeeBill(ctx context.Context, event *events.ExaminationCreated) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockIdempotencyGuard struct {
	mock.Mock
}

func (m *MockIdempotencyGuard) FirstDelivery(ctx context.Context, consumerName, eventID string) (bool, error) {
	args := m.Called(ctx, consumerName, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyGuard) Release(ctx context.Context, consumerName, eventID string) error {
	args := m.Called(ctx, consumerName, eventID)
	return args.Error(0)
}

var _ contracts.BillUsecase = (*MockBillUsecase)(nil)

func TestExaminationCreatedConsumer_FirstDeliveryCreatesBill(t *testing.T) {
	usecase := new(MockBillUsecase)
	guard := new(MockIdempotencyGuard)
	handler := NewExaminationCreatedConsumer(usecase, guard, zap.NewNop())

	event := events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: "exam-1",
		PatientID:     "patient-1",
		ClinicID:      "clinic-1",
	}
	body, _ := json.Marshal(event)

	guard.On("FirstDelivery", mock.Anything, "billing.examination_created", event.EventID).Return(true, nil)
	usecase.On("CreateExaminationFeeBill", mock.Anything, mock.MatchedBy(func(e *events.ExaminationCreated) bool {
		return e.ExaminationID == "exam-1" && e.PatientID == "patient-1"
	})).Return(nil)

	err := handler(context.Background(), body)

	assert.NoError(t, err)
	usecase.AssertExpectations(t)
	guard.AssertExpectations(t)
}

func TestExaminationCreatedConsumer_DuplicateDeliverySkipsUsecase(t *testing.T) {
	usecase := new(MockBillUsecase)
	guard := new(MockIdempotencyGuard)
	handler := NewExaminationCreatedConsumer(usecase, guard, zap.NewNop())

	event := events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: "exam-1",
	}
	body, _ := json.Marshal(event)

	guard.On("FirstDelivery", mock.Anything, "billing.examination_created", event.EventID).Return(false, nil)

	err := handler(context.Background(), body)

	assert.NoError(t, err)
	usecase.AssertNotCalled(t, "CreateExaminationFeeBill")
}

func TestExaminationCreatedConsumer_FailureReleasesClaim(t *testing.T) {
	usecase := new(MockBillUsecase)
	guard := new(MockIdempotencyGuard)
	handler := NewExaminationCreatedConsumer(usecase, guard, zap.NewNop())

	event := events.ExaminationCreated{
		Envelope:      events.NewEnvelope(),
		ExaminationID: "exam-1",
	}
	body, _ := json.Marshal(event)

	guard.On("FirstDelivery", mock.Anything, "billing.examination_created", event.EventID).Return(true, nil)
	usecase.On("CreateExaminationFeeBill", mock.Anything, mock.Anything).Return(assert.AnError)
	guard.On("Release", mock.Anything, "billing.examination_created", event.EventID).Return(nil)

	err := handler(context.Background(), body)

	assert.Error(t, err, "a failed handler must surface the error so the delivery is requeued")
	guard.AssertExpectations(t)
}

func TestExaminationCreatedConsumer_MalformedBodyIsAcked(t *testing.T) {
	usecase := new(MockBillUsecase)
	guard := new(MockIdempotencyGuard)
	handler := NewExaminationCreatedConsumer(usecase, guard, zap.NewNop())

	err := handler(context.Background(), []byte("not-json"))

	assert.NoError(t, err)
	guard.AssertNotCalled(t, "FirstDelivery")
	usecase.AssertNotCalled(t, "CreateExaminationFeeBill")
}
