package billing

import (
	"context"
	"database/sql"
	"time"

	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/queries"
)

type billPostgresRepository struct {
	DB *sql.DB
}

func NewBillPostgresRepository(db *sql.DB) contracts.BillRepository {
	return &billPostgresRepository{
		DB: db,
	}
}

func (repo *billPostgresRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := repo.scanOne(repo.DB.QueryRowContext(ctx, queries.GetBillByID, billID))
	if err != nil || bill == nil {
		return bill, err
	}
	if err := repo.loadItems(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (repo *billPostgresRepository) FindByReferenceID(ctx context.Context, referenceID string) (*models.Bill, error) {
	bill, err := repo.scanOne(repo.DB.QueryRowContext(ctx, queries.GetBillByReferenceID, referenceID))
	if err != nil || bill == nil {
		return bill, err
	}
	if err := repo.loadItems(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (repo *billPostgresRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error) {
	return repo.findAll(ctx, queries.GetBillsByPatientID, patientID)
}

func (repo *billPostgresRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	return repo.findAll(ctx, queries.GetAllBills)
}

func (repo *billPostgresRepository) FindPaidSince(ctx context.Context, since time.Time) ([]models.Bill, error) {
	return repo.findAll(ctx, queries.GetPaidBillsSince, string(models.BillPaid), since)
}

func (repo *billPostgresRepository) CreateBill(ctx context.Context, bill *models.Bill) error {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, queries.InsertBill,
		bill.ID,
		bill.PatientID,
		bill.ClinicID,
		bill.TotalAmount,
		bill.Status,
		bill.CreatedAt,
		bill.ReferenceID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}

	for _, item := range bill.Items {
		_, err = tx.ExecContext(ctx, queries.InsertBillItem,
			item.ID,
			bill.ID,
			item.ServiceName,
			item.Price,
			item.Quantity,
		)
		if err != nil {
			return exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *billPostgresRepository) UpdateBillPayment(ctx context.Context, bill *models.Bill) error {
	_, err := repo.DB.ExecContext(ctx, queries.UpdateBillPayment,
		bill.Status,
		bill.PaidAt,
		bill.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *billPostgresRepository) scanOne(row *sql.Row) (*models.Bill, error) {
	var bill models.Bill
	var paidAt sql.NullTime
	var referenceID sql.NullString

	err := row.Scan(
		&bill.ID,
		&bill.PatientID,
		&bill.ClinicID,
		&bill.TotalAmount,
		&bill.Status,
		&bill.CreatedAt,
		&paidAt,
		&referenceID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if paidAt.Valid {
		bill.PaidAt = &paidAt.Time
	}
	bill.ReferenceID = referenceID.String
	return &bill, nil
}

func (repo *billPostgresRepository) findAll(ctx context.Context, query string, args ...interface{}) ([]models.Bill, error) {
	rows, err := repo.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var bill models.Bill
		var paidAt sql.NullTime
		var referenceID sql.NullString
		if err := rows.Scan(
			&bill.ID,
			&bill.PatientID,
			&bill.ClinicID,
			&bill.TotalAmount,
			&bill.Status,
			&bill.CreatedAt,
			&paidAt,
			&referenceID,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		if paidAt.Valid {
			bill.PaidAt = &paidAt.Time
		}
		bill.ReferenceID = referenceID.String
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	for i := range bills {
		if err := repo.loadItems(ctx, &bills[i]); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

func (repo *billPostgresRepository) loadItems(ctx context.Context, bill *models.Bill) error {
	rows, err := repo.DB.QueryContext(ctx, queries.GetBillItemsByBillID, bill.ID)
	if err != nil {
		return exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.BillItem
		var billID string
		if err := rows.Scan(&item.ID, &billID, &item.ServiceName, &item.Price, &item.Quantity); err != nil {
			return exceptions.ErrPostgresDBFindData(err)
		}
		bill.Items = append(bill.Items, item)
	}
	return rows.Err()
}
