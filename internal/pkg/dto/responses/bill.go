package responses

import "time"

type BillItem struct {
	ID          string `json:"id"`
	ServiceName string `json:"service_name"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
}

type Bill struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	ClinicID    string     `json:"clinic_id,omitempty"`
	Items       []BillItem `json:"items"`
	TotalAmount int64      `json:"total_amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	ReferenceID string     `json:"reference_id,omitempty"`
}

type RevenuePoint struct {
	Date      string `json:"date"`
	PaidCount int    `json:"paid_count"`
	Total     int64  `json:"total"`
}
