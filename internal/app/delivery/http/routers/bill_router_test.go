package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aura-service/internal/app/config"
	"aura-service/internal/app/delivery/http/controllers"
	"aura-service/internal/app/delivery/http/middlewares"
	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
	"aura-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
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

const testJWTSecret = "test-jwt-secret"

func newBillTestRouter(t *testing.T) (*chi.Mux, *MockBillUsecase) {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{
			Secret:        testJWTSecret,
			ExpTimeInHour: 1,
		},
	}

	mockBillUsecase := new(MockBillUsecase)
	billController := controllers.NewBillController(logger, mockBillUsecase)
	middlewareInstance := middlewares.NewMiddlewares(internalConfig)

	router := chi.NewRouter()
	attachBillRoutes(router, logger, middlewareInstance, billController)
	return router, mockBillUsecase
}

func bearerToken(t *testing.T, userID, role, clinicID string) string {
	t.Helper()
	token, err := utils.GenerateUserJWT(userID, role, clinicID, testJWTSecret, 1)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestBillRouter_Authentication(t *testing.T) {
	router, mockBillUsecase := newBillTestRouter(t)

	t.Run("Pay with Valid Token", func(t *testing.T) {
		mockBillUsecase.On("PayBill", mock.Anything, "bill-1").Return(&responses.Bill{ID: "bill-1", Status: constvars.BillStatusPaid}, nil)

		req := httptest.NewRequest("POST", "/pay/bill-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "user-1", constvars.RolePatient, "clinic-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBillUsecase.AssertExpectations(t)
	})

	t.Run("Pay without Token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/pay/bill-1", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Pay with Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/pay/bill-1", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestBillRouter_RevenueChartRoleGate(t *testing.T) {
	router, mockBillUsecase := newBillTestRouter(t)

	t.Run("Admin Allowed", func(t *testing.T) {
		mockBillUsecase.On("RevenueChart", mock.Anything, mock.MatchedBy(func(request *requests.RevenueChart) bool {
			return request.ClinicID == "clinic-1" && request.Days == 7
		})).Return([]responses.RevenuePoint{}, nil)

		req := httptest.NewRequest("GET", "/admin/revenue-chart?days=7", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "admin-1", constvars.RoleAdmin, "clinic-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBillUsecase.AssertExpectations(t)
	})

	t.Run("Patient Forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/revenue-chart", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "user-1", constvars.RolePatient, "clinic-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockBillUsecase.AssertNotCalled(t, "RevenueChart")
	})
}

func TestBillRouter_CreateBill(t *testing.T) {
	router, mockBillUsecase := newBillTestRouter(t)

	t.Run("Clinic Defaults from Token", func(t *testing.T) {
		mockBillUsecase.On("CreateBill", mock.Anything, mock.MatchedBy(func(request *requests.CreateBill) bool {
			return request.ClinicID == "clinic-1" && request.PatientID == "patient-1"
		})).Return(&responses.Bill{ID: "bill-1"}, nil)

		requestBody := requests.CreateBill{
			PatientID: "patient-1",
			Items: []requests.BillItem{
				{ServiceName: "Consultation", Price: 75000, Quantity: 1},
			},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "user-1", constvars.RoleClinicManager, "clinic-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockBillUsecase.AssertExpectations(t)
	})

	t.Run("Missing Items Rejected", func(t *testing.T) {
		requestBody := map[string]interface{}{"patient_id": "patient-1"}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "user-1", constvars.RoleClinicManager, "clinic-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBillUsecase.AssertNotCalled(t, "CreateBill")
	})
}
