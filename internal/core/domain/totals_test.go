package domain_test

import (
	"testing"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewLineItem_ComputesLineTotal(t *testing.T) {
	li := domain.NewLineItem("l1", "inv1", "Web Development Services", 40, decimal.RequireFromString("150.00"))

	assert.True(t, decimal.RequireFromString("6000").Equal(li.LineTotal))
	assert.Equal(t, 40, li.Quantity)
}

func TestComputeTotals(t *testing.T) {
	lines := []domain.LineItem{
		domain.NewLineItem("l1", "inv1", "Web Development Services", 40, decimal.RequireFromString("150.00")),
		domain.NewLineItem("l2", "inv1", "Hosting Setup", 1, decimal.RequireFromString("499.99")),
	}

	tests := []struct {
		name       string
		payments   []domain.Payment
		wantPaid   string
		wantDue    string
		wantSettle bool
	}{
		{name: "no payments", payments: nil, wantPaid: "0", wantDue: "6499.99"},
		{
			name:     "partial payment",
			payments: []domain.Payment{{Amount: decimal.RequireFromString("6000.00")}},
			wantPaid: "6000", wantDue: "499.99",
		},
		{
			name: "fully paid",
			payments: []domain.Payment{
				{Amount: decimal.RequireFromString("6000.00")},
				{Amount: decimal.RequireFromString("499.99")},
			},
			wantPaid: "6499.99", wantDue: "0", wantSettle: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := domain.ComputeTotals(lines, tt.payments)

			assert.True(t, decimal.RequireFromString("6499.99").Equal(totals.Total), "total was %s", totals.Total)
			assert.True(t, decimal.RequireFromString(tt.wantPaid).Equal(totals.AmountPaid), "paid was %s", totals.AmountPaid)
			assert.True(t, decimal.RequireFromString(tt.wantDue).Equal(totals.BalanceDue), "due was %s", totals.BalanceDue)
			assert.True(t, totals.Total.Sub(totals.AmountPaid).Equal(totals.BalanceDue))
			assert.Equal(t, tt.wantSettle, totals.IsSettled())
		})
	}
}

func TestInvoiceTotals_CanAccept(t *testing.T) {
	totals := domain.InvoiceTotals{BalanceDue: decimal.RequireFromString("499.99")}

	assert.True(t, totals.CanAccept(decimal.RequireFromString("499.99")))
	assert.True(t, totals.CanAccept(decimal.RequireFromString("0.01")))
	assert.False(t, totals.CanAccept(decimal.RequireFromString("500.00")))
}
