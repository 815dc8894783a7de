package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"github.com/SscSPs/invoice_management_app/internal/utils/pagination"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// moneyScale is the number of fractional digits accepted for prices and payments.
	moneyScale = 2
)

var (
	maxTaxRate = decimal.NewFromInt(100)

	// Upper bounds match the NUMERIC(12,2) and NUMERIC(14,2) columns.
	maxAmount    = decimal.RequireFromString("9999999999.99")
	maxLineTotal = decimal.RequireFromString("999999999999.99")
)

// LedgerOption is a functional option for configuring the invoice ledger service
type LedgerOption func(*invoiceLedgerService)

// WithClock overrides the time source used for payment dates and audit fields.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *invoiceLedgerService) {
		s.now = now
	}
}

// invoiceLedgerService derives invoice totals and performs the atomic
// create, pay, archive and restore operations. It holds no invoice state of
// its own; every computation re-reads from the repository.
type invoiceLedgerService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	validate    *validator.Validate
	now         func() time.Time
}

// NewInvoiceLedgerService creates a new invoice ledger service.
func NewInvoiceLedgerService(invoiceRepo portsrepo.InvoiceRepositoryFacade, options ...LedgerOption) portssvc.InvoiceLedgerSvcFacade {
	s := &invoiceLedgerService{
		invoiceRepo: invoiceRepo,
		validate:    newValidator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.InvoiceLedgerSvcFacade = (*invoiceLedgerService)(nil)

// ComputeTotals re-reads the invoice's line items and payments and sums them.
func (s *invoiceLedgerService) ComputeTotals(ctx context.Context, invoiceID string, ownerID string) (*domain.InvoiceTotals, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, ownerID); err != nil {
		return nil, err
	}

	lineItems, err := s.invoiceRepo.FindLineItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	payments, err := s.invoiceRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	totals := domain.ComputeTotals(lineItems, payments)
	return &totals, nil
}

// GetInvoice returns the invoice with its line items, payments and totals.
// The reads share one unit of work so that status and totals come from the
// same committed state.
func (s *invoiceLedgerService) GetInvoice(ctx context.Context, invoiceID string, ownerID string) (*domain.InvoiceDetails, error) {
	var details domain.InvoiceDetails
	err := s.invoiceRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error {
		invoice, err := tx.LockInvoice(ctx, invoiceID, ownerID)
		if err != nil {
			return err
		}
		lineItems, err := tx.FindLineItems(ctx, invoiceID)
		if err != nil {
			return err
		}
		payments, err := tx.FindPayments(ctx, invoiceID)
		if err != nil {
			return err
		}

		details = domain.InvoiceDetails{
			Invoice:   *invoice,
			LineItems: lineItems,
			Payments:  payments,
			Totals:    domain.ComputeTotals(lineItems, payments),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// ListInvoices returns a page of the owner's invoices, newest first.
func (s *invoiceLedgerService) ListInvoices(ctx context.Context, ownerID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := pagination.ClampLimit(params.Limit, defaultListLimit, maxListLimit)

	if params.NextToken != nil && *params.NextToken != "" {
		if _, _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
	}

	summaries, nextToken, err := s.invoiceRepo.ListInvoicesByOwner(ctx, ownerID, limit, params.NextToken, params.IncludeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("owner_id", ownerID))
		return nil, err
	}

	resp := &dto.ListInvoicesResponse{
		Invoices:  make([]dto.InvoiceResponse, len(summaries)),
		NextToken: nextToken,
	}
	for i, summary := range summaries {
		resp.Invoices[i] = dto.ToInvoiceSummaryResponse(summary)
	}
	return resp, nil
}

// CreateInvoice validates the request, then writes the invoice header and
// every line item in one unit of work. Line totals are always computed here;
// nothing the client sends for them is trusted.
func (s *invoiceLedgerService) CreateInvoice(ctx context.Context, ownerID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := s.GetLogger(ctx)

	invoice, lineItems, err := s.buildInvoice(ownerID, req)
	if err != nil {
		logger.Warn("Invoice validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	err = s.invoiceRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error {
		if err := tx.InsertInvoice(ctx, invoice); err != nil {
			return err
		}
		return tx.InsertLineItems(ctx, lineItems)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Invoice number already exists", slog.String("invoice_number", invoice.InvoiceNumber))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.Info("Invoice created successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.Int("line_items", len(lineItems)))
	return &invoice, nil
}

// RecordPayment appends a payment under an exclusive lock on the invoice so
// that the balance check, the insert and the status change cannot interleave
// with another payment for the same invoice.
func (s *invoiceLedgerService) RecordPayment(ctx context.Context, invoiceID string, ownerID string, amount decimal.Decimal) (*domain.Payment, *domain.InvoiceTotals, error) {
	logger := s.GetLogger(ctx).With(slog.String("invoice_id", invoiceID))

	if !amount.IsPositive() {
		return nil, nil, apperrors.NewValidationFailedError("payment amount must be greater than zero")
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return nil, nil, apperrors.NewValidationFailedError(fmt.Sprintf("payment amount must have at most %d decimal places", moneyScale))
	}
	if amount.GreaterThan(maxAmount) {
		return nil, nil, apperrors.NewValidationFailedError("payment amount must be at most " + maxAmount.String())
	}

	var (
		payment domain.Payment
		after   domain.InvoiceTotals
	)
	err := s.invoiceRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error {
		invoice, err := tx.LockInvoice(ctx, invoiceID, ownerID)
		if err != nil {
			return err
		}

		lineItems, err := tx.FindLineItems(ctx, invoiceID)
		if err != nil {
			return err
		}
		payments, err := tx.FindPayments(ctx, invoiceID)
		if err != nil {
			return err
		}

		before := domain.ComputeTotals(lineItems, payments)
		if invoice.IsPaid() || before.IsSettled() {
			return apperrors.NewValidationFailedError("invoice is already fully paid")
		}
		if !before.CanAccept(amount) {
			return apperrors.NewValidationFailedError(fmt.Sprintf(
				"payment of %s exceeds balance due of %s", amount.StringFixed(moneyScale), before.BalanceDue.StringFixed(moneyScale)))
		}

		payment = domain.Payment{
			PaymentID:   uuid.NewString(),
			InvoiceID:   invoiceID,
			Amount:      amount,
			PaymentDate: s.now(),
		}
		if err := tx.InsertPayment(ctx, payment); err != nil {
			return err
		}

		after = domain.ComputeTotals(lineItems, append(payments, payment))
		if after.IsSettled() {
			return tx.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoicePaid, ownerID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment rejected", slog.String("amount", amount.String()), slog.String("error", err.Error()))
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to record payment", slog.String("invoice_id", invoiceID))
		return nil, nil, fmt.Errorf("failed to record payment: %w", err)
	}

	logger.Info("Payment recorded successfully",
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", amount.String()),
		slog.String("balance_due", after.BalanceDue.String()))
	return &payment, &after, nil
}

// Archive sets the archive flag. Archiving an archived invoice is a no-op.
func (s *invoiceLedgerService) Archive(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	return s.setArchived(ctx, invoiceID, ownerID, true)
}

// Restore clears the archive flag. Restoring an active invoice is a no-op.
func (s *invoiceLedgerService) Restore(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	return s.setArchived(ctx, invoiceID, ownerID, false)
}

func (s *invoiceLedgerService) setArchived(ctx context.Context, invoiceID, ownerID string, archived bool) (*domain.Invoice, error) {
	var updated *domain.Invoice
	err := s.invoiceRepo.WithinTx(ctx, func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error {
		invoice, err := tx.LockInvoice(ctx, invoiceID, ownerID)
		if err != nil {
			return err
		}
		if invoice.IsArchived == archived {
			updated = invoice
			return nil
		}
		updated, err = tx.SetInvoiceArchived(ctx, invoiceID, archived, ownerID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update archive flag", slog.String("invoice_id", invoiceID), slog.Bool("archived", archived))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice archive flag updated", slog.String("invoice_id", invoiceID), slog.Bool("archived", archived))
	return updated, nil
}

// SeedDemoInvoice creates a sample three-line invoice for the owner.
func (s *invoiceLedgerService) SeedDemoInvoice(ctx context.Context, ownerID string) (*domain.Invoice, error) {
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to generate invoice number", err)
	}

	today := s.now()
	email := "contact@acme.com"
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: fmt.Sprintf("INV-%d-%s", today.Year(), strings.ToUpper(suffix)),
		CustomerName:  "Acme Corporation",
		CustomerEmail: &email,
		IssueDate:     today.Format(dto.DateLayout),
		DueDate:       today.AddDate(0, 0, 30).Format(dto.DateLayout),
		LineItems: []dto.CreateLineItemRequest{
			{Description: "Web Development Services", Quantity: 40, UnitPrice: "150.00"},
			{Description: "UI/UX Design", Quantity: 20, UnitPrice: "125.00"},
			{Description: "Hosting Setup", Quantity: 1, UnitPrice: "499.99"},
		},
	}
	return s.CreateInvoice(ctx, ownerID, req)
}

// buildInvoice validates req and turns it into the rows to insert. It performs
// no I/O, so a validation failure can never leave a partial write behind.
func (s *invoiceLedgerService) buildInvoice(ownerID string, req dto.CreateInvoiceRequest) (domain.Invoice, []domain.LineItem, error) {
	req.InvoiceNumber = strings.TrimSpace(req.InvoiceNumber)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	req.CustomerEmail = trimOptional(req.CustomerEmail)
	req.CustomerAddress = trimOptional(req.CustomerAddress)
	req.LineItems = slices.Clone(req.LineItems)
	for i := range req.LineItems {
		req.LineItems[i].Description = strings.TrimSpace(req.LineItems[i].Description)
	}

	if err := s.validate.Struct(req); err != nil {
		return domain.Invoice{}, nil, validationError(err)
	}

	now := s.now()
	issueDate := truncateToDate(now)
	if req.IssueDate != "" {
		issueDate, _ = time.Parse(dto.DateLayout, req.IssueDate)
	}
	dueDate, _ := time.Parse(dto.DateLayout, req.DueDate)
	if dueDate.Before(issueDate) {
		return domain.Invoice{}, nil, apperrors.NewValidationFailedError("dueDate must not be before issueDate")
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrencyCode
	}

	taxRate := decimal.Zero
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
		if taxRate.IsNegative() || taxRate.GreaterThan(maxTaxRate) {
			return domain.Invoice{}, nil, apperrors.NewValidationFailedError("taxRate must be between 0 and 100")
		}
	}

	invoiceID := uuid.NewString()
	lineItems := make([]domain.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		unitPrice, err := parseMoney(li.UnitPrice.String())
		if err != nil {
			return domain.Invoice{}, nil, apperrors.NewValidationFailedError(fmt.Sprintf("lineItems[%d].unitPrice %s", i, err.Error()))
		}
		lineItems[i] = domain.NewLineItem(uuid.NewString(), invoiceID, li.Description, li.Quantity, unitPrice)
		if lineItems[i].LineTotal.GreaterThan(maxLineTotal) {
			return domain.Invoice{}, nil, apperrors.NewValidationFailedError(fmt.Sprintf("lineItems[%d] total must be at most %s", i, maxLineTotal.String()))
		}
	}

	invoice := domain.Invoice{
		InvoiceID:       invoiceID,
		OwnerID:         ownerID,
		InvoiceNumber:   req.InvoiceNumber,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		IssueDate:       issueDate,
		DueDate:         dueDate,
		Status:          domain.InvoiceDraft,
		CurrencyCode:    currency,
		TaxRate:         taxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	return invoice, lineItems, nil
}

// parseMoney parses a non-negative amount with at most two fractional digits.
func parseMoney(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errors.New("must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("must not be negative")
	}
	if !d.Equal(d.Round(moneyScale)) {
		return decimal.Zero, fmt.Errorf("must have at most %d decimal places", moneyScale)
	}
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("must be at most %s", maxAmount.String())
	}
	return d, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
