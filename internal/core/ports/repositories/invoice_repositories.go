package repositories

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// InvoiceReader defines owner-scoped read operations for invoice data.
// An invoice owned by somebody else is reported as apperrors.ErrNotFound.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header owned by ownerID.
	FindInvoiceByID(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error)

	// FindLineItemsByInvoiceID retrieves all line items of an invoice.
	FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error)

	// FindPaymentsByInvoiceID retrieves all payments of an invoice, newest first.
	FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// ListInvoicesByOwner retrieves a page of invoices with their totals, newest first.
	ListInvoicesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string, includeArchived bool) ([]domain.InvoiceSummary, *string, error)
}

// InvoiceTxRepository is the set of operations available inside an InvoiceUnitOfWork.
type InvoiceTxRepository interface {
	// LockInvoice reads the invoice owned by ownerID and holds an exclusive lock
	// on it until the unit of work ends.
	LockInvoice(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error)

	// FindLineItems reads line items as seen by the open transaction.
	FindLineItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error)

	// FindPayments reads payments as seen by the open transaction.
	FindPayments(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// InsertInvoice persists a new invoice header. A duplicate invoice number
	// yields apperrors.ErrConflict.
	InsertInvoice(ctx context.Context, invoice domain.Invoice) error

	// InsertLineItems persists the line items of an invoice.
	InsertLineItems(ctx context.Context, lineItems []domain.LineItem) error

	// InsertPayment appends a payment.
	InsertPayment(ctx context.Context, payment domain.Payment) error

	// UpdateInvoiceStatus sets the cached status of an invoice.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error

	// SetInvoiceArchived toggles the archive flag and returns the updated invoice.
	SetInvoiceArchived(ctx context.Context, invoiceID string, archived bool, updatedBy string) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceUnitOfWork
}
