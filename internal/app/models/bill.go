package models

import (
	"sort"
	"time"

	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/exceptions"
)

type BillStatus string

const (
	BillPending BillStatus = constvars.BillStatusPending
	BillPaid    BillStatus = constvars.BillStatusPaid
)

// BillItem is one billable service entry. Price is in minor currency units so
// totals stay exact.
type BillItem struct {
	ID          string `json:"id"`
	ServiceName string `json:"service_name"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
}

type Bill struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	ClinicID    string     `json:"clinic_id"`
	Items       []BillItem `json:"items"`
	TotalAmount int64      `json:"total_amount"`
	Status      BillStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`

	// ReferenceID links a reactively created bill back to its examination.
	ReferenceID string `json:"reference_id,omitempty"`
}

// NewBill returns an unpaid bill with no line items.
func NewBill(id, patientID, clinicID, referenceID string, createdAt time.Time) *Bill {
	return &Bill{
		ID:          id,
		PatientID:   patientID,
		ClinicID:    clinicID,
		Status:      BillPending,
		CreatedAt:   createdAt.UTC(),
		ReferenceID: referenceID,
	}
}

// AddLineItem appends a service entry and keeps the stored total in sync so a
// stale total is never observable between an add and a later recompute.
func (b *Bill) AddLineItem(itemID, serviceName string, price, quantity int64) error {
	if price < 0 || quantity < 0 {
		return exceptions.ErrBillNegativeLineItem(nil)
	}
	b.Items = append(b.Items, BillItem{
		ID:          itemID,
		ServiceName: serviceName,
		Price:       price,
		Quantity:    quantity,
	})
	b.RecomputeTotal()
	return nil
}

// RecomputeTotal sets TotalAmount to the exact sum of price*quantity over all
// current line items. Idempotent.
func (b *Bill) RecomputeTotal() {
	var total int64
	for _, item := range b.Items {
		total += item.Price * item.Quantity
	}
	b.TotalAmount = total
}

// Pay settles the bill. Paying twice is rejected; there is no partial payment
// and no refund.
func (b *Bill) Pay(now time.Time) error {
	if b.Status == BillPaid {
		return exceptions.ErrBillAlreadyPaid(nil)
	}
	b.Status = BillPaid
	paidAt := now.UTC()
	b.PaidAt = &paidAt
	return nil
}

// DailyRevenue is one calendar day's settled billing volume.
type DailyRevenue struct {
	Date      string `json:"date"`
	PaidCount int    `json:"paid_count"`
	Total     int64  `json:"total"`
}

// RevenueByDay reports paid bills created on or after the cutoff, grouped by
// UTC calendar date in ascending order.
func RevenueByDay(bills []Bill, since time.Time) []DailyRevenue {
	grouped := make(map[string]*DailyRevenue)
	for _, bill := range bills {
		if bill.Status != BillPaid {
			continue
		}
		if bill.CreatedAt.Before(since) {
			continue
		}
		day := bill.CreatedAt.UTC().Format("2006-01-02")
		entry, ok := grouped[day]
		if !ok {
			entry = &DailyRevenue{Date: day}
			grouped[day] = entry
		}
		entry.PaidCount++
		entry.Total += bill.TotalAmount
	}

	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DailyRevenue, 0, len(days))
	for _, day := range days {
		result = append(result, *grouped[day])
	}
	return result
}
