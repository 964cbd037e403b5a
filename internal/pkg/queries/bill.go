package queries

const (
	GetBillByID = `
		SELECT id, patient_id, clinic_id, total_amount, status, created_at, paid_at, reference_id
		FROM bills
		WHERE id = $1
	`

	GetBillByReferenceID = `
		SELECT id, patient_id, clinic_id, total_amount, status, created_at, paid_at, reference_id
		FROM bills
		WHERE reference_id = $1
	`

	GetBillsByPatientID = `
		SELECT id, patient_id, clinic_id, total_amount, status, created_at, paid_at, reference_id
		FROM bills
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`

	GetAllBills = `
		SELECT id, patient_id, clinic_id, total_amount, status, created_at, paid_at, reference_id
		FROM bills
		ORDER BY created_at DESC
	`

	GetPaidBillsSince = `
		SELECT id, patient_id, clinic_id, total_amount, status, created_at, paid_at, reference_id
		FROM bills
		WHERE status = $1 AND created_at >= $2
	`

	InsertBill = `
		INSERT INTO bills (id, patient_id, clinic_id, total_amount, status, created_at, reference_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	UpdateBillPayment = `
		UPDATE bills
		SET status = $1, paid_at = $2
		WHERE id = $3
	`

	GetBillItemsByBillID = `
		SELECT id, bill_id, service_name, price, quantity
		FROM bill_items
		WHERE bill_id = $1
	`

	InsertBillItem = `
		INSERT INTO bill_items (id, bill_id, service_name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
	`
)
