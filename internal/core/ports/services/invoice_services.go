package services

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// InvoiceLedgerReaderSvc defines owner-scoped read operations for invoices.
type InvoiceLedgerReaderSvc interface {
	// ComputeTotals derives total, amount paid and balance due from persisted rows.
	ComputeTotals(ctx context.Context, invoiceID string, ownerID string) (*domain.InvoiceTotals, error)

	// GetInvoice retrieves an invoice with its line items, payments and totals.
	GetInvoice(ctx context.Context, invoiceID string, ownerID string) (*domain.InvoiceDetails, error)

	// ListInvoices retrieves a page of the owner's invoices with totals.
	ListInvoices(ctx context.Context, ownerID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceLedgerWriterSvc defines the state-mutating ledger operations.
// Each call is one atomic unit of work against the store.
type InvoiceLedgerWriterSvc interface {
	// CreateInvoice persists an invoice and all of its line items atomically.
	CreateInvoice(ctx context.Context, ownerID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// RecordPayment appends a payment and flips the invoice to PAID once the balance reaches zero.
	RecordPayment(ctx context.Context, invoiceID string, ownerID string, amount decimal.Decimal) (*domain.Payment, *domain.InvoiceTotals, error)

	// Archive sets the archive flag on an owned invoice.
	Archive(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error)

	// Restore clears the archive flag on an owned invoice.
	Restore(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error)

	// SeedDemoInvoice creates a sample invoice for the owner.
	SeedDemoInvoice(ctx context.Context, ownerID string) (*domain.Invoice, error)
}

// InvoiceLedgerSvcFacade combines all invoice-related service interfaces
type InvoiceLedgerSvcFacade interface {
	InvoiceLedgerReaderSvc
	InvoiceLedgerWriterSvc
}
