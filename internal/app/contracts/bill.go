package contracts

import (
	"context"
	"time"

	"aura-service/internal/app/models"
	"aura-service/internal/pkg/dto/requests"
	"aura-service/internal/pkg/dto/responses"
	"aura-service/internal/pkg/events"
)

type BillUsecase interface {
	CreateBill(ctx context.Context, request *requests.CreateBill) (*responses.Bill, error)
	FindAll(ctx context.Context, request *requests.ListBills) ([]responses.Bill, error)
	PayBill(ctx context.Context, billID string) (*responses.Bill, error)
	RevenueChart(ctx context.Context, request *requests.RevenueChart) ([]responses.RevenuePoint, error)
	CreateExaminationFeeBill(ctx context.Context, event *events.ExaminationCreated) error
}

type BillRepository interface {
	FindByID(ctx context.Context, billID string) (*models.Bill, error)
	FindByReferenceID(ctx context.Context, referenceID string) (*models.Bill, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error)
	FindAll(ctx context.Context) ([]models.Bill, error)
	FindPaidSince(ctx context.Context, since time.Time) ([]models.Bill, error)
	CreateBill(ctx context.Context, bill *models.Bill) error
	UpdateBillPayment(ctx context.Context, bill *models.Bill) error
}
