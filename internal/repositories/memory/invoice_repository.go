package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_management_app/internal/utils/pagination"
)

type invoiceState struct {
	invoices  map[string]domain.Invoice
	byNumber  map[string]string // invoice number -> invoice id
	lineItems map[string][]domain.LineItem
	payments  map[string][]domain.Payment
}

func newInvoiceState() *invoiceState {
	return &invoiceState{
		invoices:  make(map[string]domain.Invoice),
		byNumber:  make(map[string]string),
		lineItems: make(map[string][]domain.LineItem),
		payments:  make(map[string][]domain.Payment),
	}
}

func (st *invoiceState) clone() *invoiceState {
	c := &invoiceState{
		invoices:  make(map[string]domain.Invoice, len(st.invoices)),
		byNumber:  make(map[string]string, len(st.byNumber)),
		lineItems: make(map[string][]domain.LineItem, len(st.lineItems)),
		payments:  make(map[string][]domain.Payment, len(st.payments)),
	}
	for k, v := range st.invoices {
		c.invoices[k] = v
	}
	for k, v := range st.byNumber {
		c.byNumber[k] = v
	}
	for k, v := range st.lineItems {
		c.lineItems[k] = slices.Clone(v)
	}
	for k, v := range st.payments {
		c.payments[k] = slices.Clone(v)
	}
	return c
}

func (st *invoiceState) owned(invoiceID, ownerID string) (*domain.Invoice, error) {
	inv, ok := st.invoices[invoiceID]
	if !ok || inv.OwnerID != ownerID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
	}
	return &inv, nil
}

// sortedPayments returns payments newest first, matching the SQL ordering.
func (st *invoiceState) sortedPayments(invoiceID string) []domain.Payment {
	out := slices.Clone(st.payments[invoiceID])
	slices.SortStableFunc(out, func(a, b domain.Payment) int {
		return b.PaymentDate.Compare(a.PaymentDate)
	})
	if out == nil {
		out = []domain.Payment{}
	}
	return out
}

func (st *invoiceState) sortedLineItems(invoiceID string) []domain.LineItem {
	out := slices.Clone(st.lineItems[invoiceID])
	if out == nil {
		out = []domain.LineItem{}
	}
	return out
}

// InvoiceRepository is an in-memory portsrepo.InvoiceRepositoryFacade.
type InvoiceRepository struct {
	mu    sync.RWMutex
	state *invoiceState
}

// NewInvoiceRepository creates an empty in-memory invoice repository.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{state: newInvoiceState()}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// WithinTx runs fn against a staged copy of the store while holding the
// store-wide write lock. The copy replaces the store only if fn succeeds.
func (r *InvoiceRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("failed to begin transaction", err)
	}

	staged := &invoiceTx{state: r.state.clone()}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("failed to commit transaction", err)
	}

	r.state = staged.state
	return nil
}

// FindInvoiceByID implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.owned(invoiceID, ownerID)
}

// FindLineItemsByInvoiceID implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) FindLineItemsByInvoiceID(_ context.Context, invoiceID string) ([]domain.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.sortedLineItems(invoiceID), nil
}

// FindPaymentsByInvoiceID implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) FindPaymentsByInvoiceID(_ context.Context, invoiceID string) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.sortedPayments(invoiceID), nil
}

// ListInvoicesByOwner implements portsrepo.InvoiceReader.
func (r *InvoiceRepository) ListInvoicesByOwner(_ context.Context, ownerID string, limit int, nextToken *string, includeArchived bool) ([]domain.InvoiceSummary, *string, error) {
	var (
		afterCreated time.Time
		afterID      string
		hasCursor    bool
	)
	if nextToken != nil && *nextToken != "" {
		var err error
		afterCreated, afterID, err = pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError(err.Error())
		}
		hasCursor = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]domain.Invoice, 0)
	for _, inv := range r.state.invoices {
		if inv.OwnerID != ownerID || (!includeArchived && inv.IsArchived) {
			continue
		}
		rows = append(rows, inv)
	}
	slices.SortFunc(rows, func(a, b domain.Invoice) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.InvoiceID > b.InvoiceID:
			return -1
		case a.InvoiceID < b.InvoiceID:
			return 1
		}
		return 0
	})

	if hasCursor {
		start := len(rows)
		for i, inv := range rows {
			if inv.CreatedAt.Before(afterCreated) || (inv.CreatedAt.Equal(afterCreated) && inv.InvoiceID < afterID) {
				start = i
				break
			}
		}
		rows = rows[start:]
	}

	var next *string
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.InvoiceID)
		next = &token
	}

	out := make([]domain.InvoiceSummary, len(rows))
	for i, inv := range rows {
		out[i] = domain.InvoiceSummary{
			Invoice: inv,
			Totals:  domain.ComputeTotals(r.state.lineItems[inv.InvoiceID], r.state.payments[inv.InvoiceID]),
		}
	}
	return out, next, nil
}

// invoiceTx is the staged view handed to a unit of work. The store-wide lock
// held by WithinTx makes LockInvoice a plain owner-scoped read.
type invoiceTx struct {
	state *invoiceState
}

var _ portsrepo.InvoiceTxRepository = (*invoiceTx)(nil)

func (t *invoiceTx) LockInvoice(_ context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	return t.state.owned(invoiceID, ownerID)
}

func (t *invoiceTx) FindLineItems(_ context.Context, invoiceID string) ([]domain.LineItem, error) {
	return t.state.sortedLineItems(invoiceID), nil
}

func (t *invoiceTx) FindPayments(_ context.Context, invoiceID string) ([]domain.Payment, error) {
	return t.state.sortedPayments(invoiceID), nil
}

func (t *invoiceTx) InsertInvoice(_ context.Context, invoice domain.Invoice) error {
	if _, taken := t.state.byNumber[invoice.InvoiceNumber]; taken {
		return apperrors.NewConflictError(fmt.Sprintf("invoice number '%s' already exists", invoice.InvoiceNumber))
	}
	if _, exists := t.state.invoices[invoice.InvoiceID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("invoice %s already exists", invoice.InvoiceID))
	}
	t.state.invoices[invoice.InvoiceID] = invoice
	t.state.byNumber[invoice.InvoiceNumber] = invoice.InvoiceID
	return nil
}

func (t *invoiceTx) InsertLineItems(_ context.Context, lineItems []domain.LineItem) error {
	for _, li := range lineItems {
		if _, ok := t.state.invoices[li.InvoiceID]; !ok {
			return apperrors.NewPersistenceError("failed to insert line item", fmt.Errorf("invoice %s does not exist", li.InvoiceID))
		}
		t.state.lineItems[li.InvoiceID] = append(t.state.lineItems[li.InvoiceID], li)
	}
	return nil
}

func (t *invoiceTx) InsertPayment(_ context.Context, payment domain.Payment) error {
	if _, ok := t.state.invoices[payment.InvoiceID]; !ok {
		return apperrors.NewPersistenceError("failed to insert payment", fmt.Errorf("invoice %s does not exist", payment.InvoiceID))
	}
	t.state.payments[payment.InvoiceID] = append(t.state.payments[payment.InvoiceID], payment)
	return nil
}

func (t *invoiceTx) UpdateInvoiceStatus(_ context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error {
	inv, ok := t.state.invoices[invoiceID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
	}
	inv.Status = status
	inv.LastUpdatedAt = time.Now().UTC()
	inv.LastUpdatedBy = updatedBy
	t.state.invoices[invoiceID] = inv
	return nil
}

func (t *invoiceTx) SetInvoiceArchived(_ context.Context, invoiceID string, archived bool, updatedBy string) (*domain.Invoice, error) {
	inv, ok := t.state.invoices[invoiceID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
	}
	inv.IsArchived = archived
	inv.LastUpdatedAt = time.Now().UTC()
	inv.LastUpdatedBy = updatedBy
	t.state.invoices[invoiceID] = inv
	return &inv, nil
}
