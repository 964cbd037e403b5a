package models

import (
	"testing"
	"time"

	"aura-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnpaidBill(createdAt time.Time) *Bill {
	return NewBill("bill-1", "patient-1", "clinic-1", "exam-1", createdAt)
}

func TestAddLineItemKeepsTotalInSync(t *testing.T) {
	bill := newUnpaidBill(time.Now().UTC())

	require.NoError(t, bill.AddLineItem("item-1", "Examination Fee", 50000, 1))
	assert.Equal(t, int64(50000), bill.TotalAmount)

	require.NoError(t, bill.AddLineItem("item-2", "Consultation", 75000, 2))
	assert.Equal(t, int64(200000), bill.TotalAmount)
}

func TestAddLineItemRejectsNegativeValues(t *testing.T) {
	bill := newUnpaidBill(time.Now().UTC())

	err := bill.AddLineItem("item-1", "Refund", -100, 1)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)

	err = bill.AddLineItem("item-2", "Examination Fee", 50000, -1)
	require.ErrorAs(t, err, &customErr)

	assert.Empty(t, bill.Items)
	assert.Zero(t, bill.TotalAmount)
}

func TestPayTransitionsOnce(t *testing.T) {
	bill := newUnpaidBill(time.Now().UTC())
	require.NoError(t, bill.AddLineItem("item-1", "Examination Fee", 50000, 1))

	paidAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	require.NoError(t, bill.Pay(paidAt))

	assert.Equal(t, BillPaid, bill.Status)
	require.NotNil(t, bill.PaidAt)
	assert.Equal(t, paidAt, *bill.PaidAt)

	err := bill.Pay(paidAt.Add(time.Hour))
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, paidAt, *bill.PaidAt)
}

func TestRevenueByDayGroupsPaidBillsOnly(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	since := day(0)

	paid := func(id string, createdAt time.Time, amount int64) *Bill {
		bill := NewBill(id, "patient-1", "clinic-1", "exam-"+id, createdAt)
		require.NoError(t, bill.AddLineItem("item-"+id, "Examination Fee", amount, 1))
		require.NoError(t, bill.Pay(createdAt))
		return bill
	}

	unpaid := NewBill("bill-unpaid", "patient-1", "clinic-1", "exam-u", day(1))
	require.NoError(t, unpaid.AddLineItem("item-u", "Examination Fee", 99999, 1))

	tooOld := paid("old", since.AddDate(0, 0, -3), 50000)

	bills := []Bill{
		*paid("a", day(0), 50000),
		*paid("b", day(0), 75000),
		*paid("c", day(2), 50000),
		*unpaid,
		*tooOld,
	}

	revenue := RevenueByDay(bills, since)

	require.Len(t, revenue, 2)
	assert.Equal(t, "2026-08-25", revenue[0].Date)
	assert.Equal(t, 2, revenue[0].PaidCount)
	assert.Equal(t, int64(125000), revenue[0].Total)
	assert.Equal(t, "2026-08-27", revenue[1].Date)
	assert.Equal(t, 1, revenue[1].PaidCount)
	assert.Equal(t, int64(50000), revenue[1].Total)
}

func TestRecomputeTotalIsIdempotent(t *testing.T) {
	bill := newUnpaidBill(time.Now().UTC())
	require.NoError(t, bill.AddLineItem("item-1", "Examination Fee", 50000, 2))

	bill.RecomputeTotal()
	bill.RecomputeTotal()

	assert.Equal(t, int64(100000), bill.TotalAmount)
}
