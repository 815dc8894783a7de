package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

func TestInvoiceRoundTrip(t *testing.T) {
	email := "billing@acme.test"
	d := domain.Invoice{
		InvoiceID:     "inv-1",
		OwnerID:       "user-1",
		InvoiceNumber: "INV-1",
		CustomerName:  "Acme",
		CustomerEmail: &email,
		IssueDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:        domain.InvoicePaid,
		CurrencyCode:  "USD",
		TaxRate:       decimal.RequireFromString("8.5"),
	}

	m := ToModelInvoice(d)
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, d, ToDomainInvoice(m))
}

func TestToModelInvoiceLines_NumbersLinesInOrder(t *testing.T) {
	lines := []domain.LineItem{
		domain.NewLineItem("a", "inv-1", "First", 1, decimal.NewFromInt(1)),
		domain.NewLineItem("b", "inv-1", "Second", 2, decimal.NewFromInt(2)),
	}

	rows := ToModelInvoiceLines(lines)
	assert.Equal(t, 1, rows[0].LineNo)
	assert.Equal(t, 2, rows[1].LineNo)
	assert.Equal(t, lines, ToDomainLineItems(rows))
}

func TestUserPasswordHashNullability(t *testing.T) {
	external := ToModelUser(domain.User{UserID: "u1", Email: "x@y.z"})
	assert.False(t, external.PasswordHash.Valid)

	local := ToModelUser(domain.User{UserID: "u2", Email: "a@b.c", PasswordHash: "$2a$10$hash"})
	assert.True(t, local.PasswordHash.Valid)
	assert.Equal(t, "$2a$10$hash", ToDomainUser(local).PasswordHash)
}
