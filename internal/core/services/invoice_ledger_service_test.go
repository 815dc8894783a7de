package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/core/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/repositories/memory"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, money(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func exampleInvoiceRequest(number string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: number,
		CustomerName:  "Acme Corporation",
		IssueDate:     "2024-01-01",
		DueDate:       "2024-01-31",
		LineItems: []dto.CreateLineItemRequest{
			{Description: "Web Development Services", Quantity: 40, UnitPrice: json.Number("150.00")},
			{Description: "Hosting Setup", Quantity: 1, UnitPrice: json.Number("499.99")},
		},
	}
}

// --- Ledger against the in-memory store ---

type InvoiceLedgerServiceTestSuite struct {
	suite.Suite
	repo   *memory.InvoiceRepository
	ledger portssvc.InvoiceLedgerSvcFacade
	ctx    context.Context
	owner  string
}

func (s *InvoiceLedgerServiceTestSuite) SetupTest() {
	s.repo = memory.NewInvoiceRepository()
	s.ledger = services.NewInvoiceLedgerService(s.repo)
	s.ctx = context.Background()
	s.owner = "user-1"
}

func TestInvoiceLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceLedgerServiceTestSuite))
}

func (s *InvoiceLedgerServiceTestSuite) createExample(number string) *domain.Invoice {
	inv, err := s.ledger.CreateInvoice(s.ctx, s.owner, exampleInvoiceRequest(number))
	s.Require().NoError(err)
	return inv
}

func (s *InvoiceLedgerServiceTestSuite) TestEndToEndPaymentFlow() {
	inv := s.createExample("INV-E2E")
	s.Equal(domain.InvoiceDraft, inv.Status)
	s.Equal(domain.DefaultCurrencyCode, inv.CurrencyCode)

	totals, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	assertMoney(s.T(), "6499.99", totals.Total)
	assertMoney(s.T(), "6499.99", totals.BalanceDue)

	_, totals, err = s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money("6000.00"))
	s.Require().NoError(err)
	assertMoney(s.T(), "499.99", totals.BalanceDue)

	details, err := s.ledger.GetInvoice(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.Equal(domain.InvoiceDraft, details.Invoice.Status)

	payment, totals, err := s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money("499.99"))
	s.Require().NoError(err)
	assertMoney(s.T(), "499.99", payment.Amount)
	assertMoney(s.T(), "0", totals.BalanceDue)
	assertMoney(s.T(), "6499.99", totals.AmountPaid)

	details, err = s.ledger.GetInvoice(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.Equal(domain.InvoicePaid, details.Invoice.Status)
	s.Len(details.Payments, 2)

	_, _, err = s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money("0.01"))
	s.ErrorIs(err, apperrors.ErrValidation)

	details, err = s.ledger.GetInvoice(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.Len(details.Payments, 2)
}

func (s *InvoiceLedgerServiceTestSuite) TestTotalsInvariantHoldsAfterEveryOperation() {
	inv := s.createExample("INV-INVARIANT")
	check := func() {
		details, err := s.ledger.GetInvoice(s.ctx, inv.InvoiceID, s.owner)
		s.Require().NoError(err)

		sumLines := decimal.Zero
		for _, li := range details.LineItems {
			s.True(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).Equal(li.LineTotal))
			sumLines = sumLines.Add(li.LineTotal)
		}
		sumPaid := decimal.Zero
		for _, p := range details.Payments {
			sumPaid = sumPaid.Add(p.Amount)
		}
		s.True(details.Totals.Total.Equal(sumLines))
		s.True(details.Totals.AmountPaid.Equal(sumPaid))
		s.True(details.Totals.BalanceDue.Equal(sumLines.Sub(sumPaid)))
		s.False(details.Totals.BalanceDue.IsNegative())
	}

	check()
	for _, amt := range []string{"100.00", "2500.50", "0.01"} {
		_, _, err := s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money(amt))
		s.Require().NoError(err)
		check()
	}
	_, err := s.ledger.Archive(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	check()
}

func (s *InvoiceLedgerServiceTestSuite) TestRecordPayment_RejectsOverpaymentWithoutEffect() {
	inv := s.createExample("INV-OVER")

	_, _, err := s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money("6500.00"))
	s.ErrorIs(err, apperrors.ErrValidation)

	totals, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	assertMoney(s.T(), "0", totals.AmountPaid)
}

func (s *InvoiceLedgerServiceTestSuite) TestRecordPayment_InvalidAmounts() {
	inv := s.createExample("INV-AMOUNTS")

	for _, amt := range []string{"0", "-5", "10.005", "10000000000.00"} {
		_, _, err := s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money(amt))
		s.ErrorIs(err, apperrors.ErrValidation, "amount %s", amt)
	}

	totals, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	assertMoney(s.T(), "0", totals.AmountPaid)
}

func (s *InvoiceLedgerServiceTestSuite) TestRecordPayment_ConcurrentFullPaymentsOnlyOneWins() {
	inv := s.createExample("INV-RACE")

	const workers = 8
	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		errs      = make([]error, workers)
		succeeded int
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, _, errs[i] = s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money("6499.99"))
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.Equal(1, succeeded)

	details, err := s.ledger.GetInvoice(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.Len(details.Payments, 1)
	assertMoney(s.T(), "0", details.Totals.BalanceDue)
	s.Equal(domain.InvoicePaid, details.Invoice.Status)
}

func (s *InvoiceLedgerServiceTestSuite) TestRecordPayment_ConcurrentPartialPaymentsNeverOverpay() {
	inv := s.createExample("INV-RACE-PARTIAL")

	const workers = 10
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// 10 x 1000.00 against 6499.99: exactly six can fit.
			_, _, _ = s.ledger.RecordPayment(s.ctx, inv.InvoiceID, s.owner, money("1000.00"))
		}()
	}
	wg.Wait()

	totals, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	assertMoney(s.T(), "6000", totals.AmountPaid)
	assertMoney(s.T(), "499.99", totals.BalanceDue)
}

func (s *InvoiceLedgerServiceTestSuite) TestCreateInvoice_ValidationFailuresPersistNothing() {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateInvoiceRequest)
	}{
		{name: "empty line items", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems = []dto.CreateLineItemRequest{} }},
		{name: "nil line items", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems = nil }},
		{name: "missing invoice number", mutate: func(r *dto.CreateInvoiceRequest) { r.InvoiceNumber = "  " }},
		{name: "missing customer", mutate: func(r *dto.CreateInvoiceRequest) { r.CustomerName = "" }},
		{name: "missing due date", mutate: func(r *dto.CreateInvoiceRequest) { r.DueDate = "" }},
		{name: "malformed due date", mutate: func(r *dto.CreateInvoiceRequest) { r.DueDate = "31/01/2024" }},
		{name: "due before issue", mutate: func(r *dto.CreateInvoiceRequest) { r.DueDate = "2023-12-31" }},
		{name: "zero quantity", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[0].Quantity = 0 }},
		{name: "blank description", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[1].Description = " " }},
		{name: "negative price", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[0].UnitPrice = "-1" }},
		{name: "non-numeric price", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[0].UnitPrice = "abc" }},
		{name: "three decimal price", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[0].UnitPrice = "1.234" }},
		{name: "quantity beyond int32", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[0].Quantity = 3_000_000_000 }},
		{name: "price beyond column precision", mutate: func(r *dto.CreateInvoiceRequest) { r.LineItems[0].UnitPrice = "123456789012345.00" }},
		{name: "line total beyond column precision", mutate: func(r *dto.CreateInvoiceRequest) {
			r.LineItems[0].Quantity = 1000
			r.LineItems[0].UnitPrice = "9999999999.99"
		}},
		{name: "bad email", mutate: func(r *dto.CreateInvoiceRequest) { e := "not-an-email"; r.CustomerEmail = &e }},
		{name: "bad currency", mutate: func(r *dto.CreateInvoiceRequest) { r.Currency = "XYZ1" }},
		{name: "tax above 100", mutate: func(r *dto.CreateInvoiceRequest) { tr := money("120"); r.TaxRate = &tr }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := exampleInvoiceRequest("INV-VALIDATION")
			tt.mutate(&req)

			inv, err := s.ledger.CreateInvoice(s.ctx, s.owner, req)
			s.Nil(inv)
			s.ErrorIs(err, apperrors.ErrValidation)

			page, err := s.ledger.ListInvoices(s.ctx, s.owner, dto.ListInvoicesParams{IncludeArchived: true})
			s.Require().NoError(err)
			s.Empty(page.Invoices)
		})
	}
}

func (s *InvoiceLedgerServiceTestSuite) TestCreateInvoice_DuplicateNumberConflicts() {
	s.createExample("INV-DUP")

	_, err := s.ledger.CreateInvoice(s.ctx, "user-2", exampleInvoiceRequest("INV-DUP"))
	s.ErrorIs(err, apperrors.ErrConflict)

	page, err := s.ledger.ListInvoices(s.ctx, "user-2", dto.ListInvoicesParams{IncludeArchived: true})
	s.Require().NoError(err)
	s.Empty(page.Invoices)
}

func (s *InvoiceLedgerServiceTestSuite) TestCreateInvoice_AppliesDefaultsAndNormalizes() {
	fixed := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	ledger := services.NewInvoiceLedgerService(s.repo, services.WithClock(func() time.Time { return fixed }))

	blank := "   "
	req := exampleInvoiceRequest("  INV-DEFAULTS  ")
	req.IssueDate = ""
	req.DueDate = "2024-07-15"
	req.CustomerEmail = &blank
	req.Currency = "eur"

	inv, err := ledger.CreateInvoice(s.ctx, s.owner, req)
	s.Require().NoError(err)
	s.Equal("INV-DEFAULTS", inv.InvoiceNumber)
	s.Equal("EUR", inv.CurrencyCode)
	s.Nil(inv.CustomerEmail)
	s.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), inv.IssueDate)
	s.True(inv.TaxRate.IsZero())
	s.Equal(fixed, inv.CreatedAt)
}

func (s *InvoiceLedgerServiceTestSuite) TestOwnerScoping() {
	inv := s.createExample("INV-OWNED")
	stranger := "user-2"

	_, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, stranger)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.ledger.GetInvoice(s.ctx, inv.InvoiceID, stranger)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, _, err = s.ledger.RecordPayment(s.ctx, inv.InvoiceID, stranger, money("1.00"))
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.ledger.Archive(s.ctx, inv.InvoiceID, stranger)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.ledger.Restore(s.ctx, inv.InvoiceID, stranger)
	s.ErrorIs(err, apperrors.ErrNotFound)

	page, err := s.ledger.ListInvoices(s.ctx, stranger, dto.ListInvoicesParams{IncludeArchived: true})
	s.Require().NoError(err)
	s.Empty(page.Invoices)

	_, err = s.ledger.GetInvoice(s.ctx, "does-not-exist", s.owner)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *InvoiceLedgerServiceTestSuite) TestArchiveRestoreAreIdempotent() {
	inv := s.createExample("INV-ARCHIVE")

	archived, err := s.ledger.Archive(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.True(archived.IsArchived)

	again, err := s.ledger.Archive(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.True(again.IsArchived)

	active, err := s.ledger.ListInvoices(s.ctx, s.owner, dto.ListInvoicesParams{IncludeArchived: false})
	s.Require().NoError(err)
	s.Empty(active.Invoices)

	restored, err := s.ledger.Restore(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.False(restored.IsArchived)

	restored, err = s.ledger.Restore(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	s.False(restored.IsArchived)
	s.Equal(domain.InvoiceDraft, restored.Status)
}

func (s *InvoiceLedgerServiceTestSuite) TestListInvoices_PagesWithTotals() {
	for _, n := range []string{"INV-A", "INV-B", "INV-C"} {
		s.createExample(n)
	}

	page, err := s.ledger.ListInvoices(s.ctx, s.owner, dto.ListInvoicesParams{Limit: 2, IncludeArchived: true})
	s.Require().NoError(err)
	s.Len(page.Invoices, 2)
	s.Require().NotNil(page.NextToken)
	s.Require().NotNil(page.Invoices[0].TotalsResponse)
	assertMoney(s.T(), "6499.99", page.Invoices[0].Total)

	rest, err := s.ledger.ListInvoices(s.ctx, s.owner, dto.ListInvoicesParams{Limit: 2, NextToken: page.NextToken, IncludeArchived: true})
	s.Require().NoError(err)
	s.Len(rest.Invoices, 1)
	s.Nil(rest.NextToken)

	bad := "%%%"
	_, err = s.ledger.ListInvoices(s.ctx, s.owner, dto.ListInvoicesParams{NextToken: &bad})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceLedgerServiceTestSuite) TestSeedDemoInvoice() {
	inv, err := s.ledger.SeedDemoInvoice(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal("Acme Corporation", inv.CustomerName)
	s.Contains(inv.InvoiceNumber, "INV-")

	totals, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	assertMoney(s.T(), "8999.99", totals.Total)

	second, err := s.ledger.SeedDemoInvoice(s.ctx, s.owner)
	s.Require().NoError(err)
	s.NotEqual(inv.InvoiceNumber, second.InvoiceNumber)
}

// --- Failure paths against a mocked unit of work ---

type MockInvoiceRepository struct {
	mock.Mock
	tx *MockInvoiceTx
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.tx)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockInvoiceRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string, includeArchived bool) ([]domain.InvoiceSummary, *string, error) {
	args := m.Called(ctx, ownerID, limit, nextToken, includeArchived)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		v := args.Get(1).(string)
		next = &v
	}
	return args.Get(0).([]domain.InvoiceSummary), next, args.Error(2)
}

type MockInvoiceTx struct {
	mock.Mock
}

var _ portsrepo.InvoiceTxRepository = (*MockInvoiceTx)(nil)

func (m *MockInvoiceTx) LockInvoice(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceTx) FindLineItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockInvoiceTx) FindPayments(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockInvoiceTx) InsertInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceTx) InsertLineItems(ctx context.Context, lineItems []domain.LineItem) error {
	return m.Called(ctx, lineItems).Error(0)
}

func (m *MockInvoiceTx) InsertPayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockInvoiceTx) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error {
	return m.Called(ctx, invoiceID, status, updatedBy).Error(0)
}

func (m *MockInvoiceTx) SetInvoiceArchived(ctx context.Context, invoiceID string, archived bool, updatedBy string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, archived, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func newMockLedger() (*MockInvoiceRepository, *MockInvoiceTx, portssvc.InvoiceLedgerSvcFacade) {
	tx := new(MockInvoiceTx)
	repo := &MockInvoiceRepository{tx: tx}
	return repo, tx, services.NewInvoiceLedgerService(repo)
}

func TestCreateInvoice_LineItemFailureIsPersistenceError(t *testing.T) {
	repo, tx, ledger := newMockLedger()
	ctx := context.Background()
	cause := errors.New("connection reset by peer")

	repo.On("WithinTx", mock.Anything).Return(nil)
	tx.On("InsertInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Return(nil)
	tx.On("InsertLineItems", mock.Anything, mock.MatchedBy(func(items []domain.LineItem) bool {
		return len(items) == 2 && items[0].LineTotal.Equal(money("6000"))
	})).Return(apperrors.NewPersistenceError("failed to insert line items", cause))

	inv, err := ledger.CreateInvoice(ctx, "user-1", exampleInvoiceRequest("INV-FAIL"))

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestCreateInvoice_ValidationFailsBeforeAnyWrite(t *testing.T) {
	repo, tx, ledger := newMockLedger()

	req := exampleInvoiceRequest("INV-EMPTY")
	req.LineItems = nil
	_, err := ledger.CreateInvoice(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "WithinTx", mock.Anything)
	tx.AssertNotCalled(t, "InsertInvoice", mock.Anything, mock.Anything)
}

func (s *InvoiceLedgerServiceTestSuite) TestCreateInvoice_AcceptsAmountsAtColumnLimits() {
	req := exampleInvoiceRequest("INV-LIMITS")
	req.LineItems = []dto.CreateLineItemRequest{
		{Description: "Bulk", Quantity: 2147483647, UnitPrice: "0.01"},
		{Description: "Capital equipment", Quantity: 100, UnitPrice: "9999999999.99"},
	}

	inv, err := s.ledger.CreateInvoice(s.ctx, s.owner, req)
	s.Require().NoError(err)

	totals, err := s.ledger.ComputeTotals(s.ctx, inv.InvoiceID, s.owner)
	s.Require().NoError(err)
	assertMoney(s.T(), "1000021474835.47", totals.Total)
}

func TestRecordPayment_StatusUpdateFailureIsPersistenceError(t *testing.T) {
	repo, tx, ledger := newMockLedger()
	ctx := context.Background()
	inv := &domain.Invoice{InvoiceID: "inv-1", OwnerID: "user-1", Status: domain.InvoiceDraft}

	repo.On("WithinTx", mock.Anything).Return(nil)
	tx.On("LockInvoice", mock.Anything, "inv-1", "user-1").Return(inv, nil)
	tx.On("FindLineItems", mock.Anything, "inv-1").Return([]domain.LineItem{
		domain.NewLineItem("l1", "inv-1", "Consulting", 1, money("100.00")),
	}, nil)
	tx.On("FindPayments", mock.Anything, "inv-1").Return([]domain.Payment{}, nil)
	tx.On("InsertPayment", mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.InvoiceID == "inv-1" && p.Amount.Equal(money("100")) && p.PaymentID != ""
	})).Return(nil)
	tx.On("UpdateInvoiceStatus", mock.Anything, "inv-1", domain.InvoicePaid, "user-1").
		Return(apperrors.NewPersistenceError("failed to update invoice status", errors.New("deadlock detected")))

	payment, totals, err := ledger.RecordPayment(ctx, "inv-1", "user-1", money("100.00"))

	assert.Nil(t, payment)
	assert.Nil(t, totals)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	tx.AssertExpectations(t)
}

func TestRecordPayment_PartialPaymentDoesNotTouchStatus(t *testing.T) {
	repo, tx, ledger := newMockLedger()
	inv := &domain.Invoice{InvoiceID: "inv-1", OwnerID: "user-1", Status: domain.InvoiceDraft}

	repo.On("WithinTx", mock.Anything).Return(nil)
	tx.On("LockInvoice", mock.Anything, "inv-1", "user-1").Return(inv, nil)
	tx.On("FindLineItems", mock.Anything, "inv-1").Return([]domain.LineItem{
		domain.NewLineItem("l1", "inv-1", "Consulting", 2, money("50.00")),
	}, nil)
	tx.On("FindPayments", mock.Anything, "inv-1").Return([]domain.Payment{{PaymentID: "p0", Amount: money("10.00")}}, nil)
	tx.On("InsertPayment", mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil)

	_, totals, err := ledger.RecordPayment(context.Background(), "inv-1", "user-1", money("40.00"))

	require.NoError(t, err)
	assertMoney(t, "50", totals.AmountPaid)
	assertMoney(t, "50", totals.BalanceDue)
	tx.AssertNotCalled(t, "UpdateInvoiceStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordPayment_BeginFailure(t *testing.T) {
	repo, _, ledger := newMockLedger()
	repo.On("WithinTx", mock.Anything).Return(apperrors.NewPersistenceError("failed to begin transaction", errors.New("pool closed")))

	_, _, err := ledger.RecordPayment(context.Background(), "inv-1", "user-1", money("1.00"))
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestGetInvoice_ReadsWithinOneUnitOfWork(t *testing.T) {
	repo, tx, ledger := newMockLedger()
	inv := &domain.Invoice{InvoiceID: "inv-1", OwnerID: "user-1", Status: domain.InvoicePaid}

	repo.On("WithinTx", mock.Anything).Return(nil)
	tx.On("LockInvoice", mock.Anything, "inv-1", "user-1").Return(inv, nil)
	tx.On("FindLineItems", mock.Anything, "inv-1").Return([]domain.LineItem{
		domain.NewLineItem("l1", "inv-1", "Consulting", 1, money("100.00")),
	}, nil)
	tx.On("FindPayments", mock.Anything, "inv-1").Return([]domain.Payment{{PaymentID: "p1", Amount: money("100.00")}}, nil)

	details, err := ledger.GetInvoice(context.Background(), "inv-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, details.Invoice.Status)
	assertMoney(t, "0", details.Totals.BalanceDue)
	tx.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindInvoiceByID", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindLineItemsByInvoiceID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindPaymentsByInvoiceID", mock.Anything, mock.Anything)
}

func TestGetInvoice_ForeignOwnerIsNotFound(t *testing.T) {
	repo, tx, ledger := newMockLedger()
	repo.On("WithinTx", mock.Anything).Return(nil)
	tx.On("LockInvoice", mock.Anything, "inv-1", "intruder").Return(nil, apperrors.NewNotFoundError("invoice inv-1 not found"))

	details, err := ledger.GetInvoice(context.Background(), "inv-1", "intruder")

	assert.Nil(t, details)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	tx.AssertNotCalled(t, "FindLineItems", mock.Anything, mock.Anything)
}

func TestComputeTotals_ReadFailure(t *testing.T) {
	repo, _, ledger := newMockLedger()
	repo.On("FindInvoiceByID", mock.Anything, "inv-1", "user-1").Return(&domain.Invoice{InvoiceID: "inv-1"}, nil)
	repo.On("FindLineItemsByInvoiceID", mock.Anything, "inv-1").Return(nil, apperrors.NewPersistenceError("failed to read line items", errors.New("timeout")))

	_, err := ledger.ComputeTotals(context.Background(), "inv-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	repo.AssertNotCalled(t, "FindPaymentsByInvoiceID", mock.Anything, mock.Anything)
}
