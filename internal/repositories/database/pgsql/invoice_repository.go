package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_management_app/internal/models"
	"github.com/SscSPs/invoice_management_app/internal/utils/mapping"
	"github.com/SscSPs/invoice_management_app/internal/utils/pagination"
)

const invoiceColumns = `i.invoice_id, i.user_id, i.invoice_number, i.customer_name, i.customer_email,
	i.customer_address, i.issue_date, i.due_date, i.status, i.is_archived, i.currency_code, i.tax_rate,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by`

// PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade on PostgreSQL.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// WithinTx runs fn inside a database transaction, committing when fn
// returns nil and rolling back otherwise.
func (r *PgxInvoiceRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.InvoiceTxRepository) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(context.WithoutCancel(ctx), tx)
	}()

	if err := fn(ctx, &pgxInvoiceTx{tx: tx}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func notFoundInvoice(invoiceID string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
}

func scanInvoice(row pgx.Row, extra ...any) (*domain.Invoice, error) {
	var m models.Invoice
	dest := []any{
		&m.InvoiceID,
		&m.UserID,
		&m.InvoiceNumber,
		&m.CustomerName,
		&m.CustomerEmail,
		&m.CustomerAddress,
		&m.IssueDate,
		&m.DueDate,
		&m.Status,
		&m.IsArchived,
		&m.CurrencyCode,
		&m.TaxRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

func findInvoice(ctx context.Context, q querier, invoiceID, ownerID string, forUpdate bool) (*domain.Invoice, error) {
	if uuid.Validate(invoiceID) != nil {
		return nil, notFoundInvoice(invoiceID)
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.invoice_id = $1 AND i.user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	invoice, err := scanInvoice(q.QueryRow(ctx, query, invoiceID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundInvoice(invoiceID)
		}
		return nil, apperrors.NewPersistenceError("failed to find invoice", err)
	}
	return invoice, nil
}

func findLineItems(ctx context.Context, q querier, invoiceID string) ([]domain.LineItem, error) {
	query := `
		SELECT line_item_id, invoice_id, line_no, description, quantity, unit_price, line_total
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY line_no;
	`
	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query line items", err)
	}
	defer rows.Close()

	lines := []models.InvoiceLine{}
	for rows.Next() {
		var m models.InvoiceLine
		if err := rows.Scan(&m.LineItemID, &m.InvoiceID, &m.LineNo, &m.Description, &m.Quantity, &m.UnitPrice, &m.LineTotal); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan line item row", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating line item rows", err)
	}
	return mapping.ToDomainLineItems(lines), nil
}

func findPayments(ctx context.Context, q querier, invoiceID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, invoice_id, amount, payment_date
		FROM payments
		WHERE invoice_id = $1
		ORDER BY payment_date DESC, payment_id DESC;
	`
	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.InvoiceID, &m.Amount, &m.PaymentDate); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating payment rows", err)
	}
	return mapping.ToDomainPayments(payments), nil
}

// FindInvoiceByID implements portsrepo.InvoiceReader.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	return findInvoice(ctx, r.Pool, invoiceID, ownerID, false)
}

// FindLineItemsByInvoiceID implements portsrepo.InvoiceReader.
func (r *PgxInvoiceRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	return findLineItems(ctx, r.Pool, invoiceID)
}

// FindPaymentsByInvoiceID implements portsrepo.InvoiceReader.
func (r *PgxInvoiceRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	return findPayments(ctx, r.Pool, invoiceID)
}

// ListInvoicesByOwner implements portsrepo.InvoiceReader. Totals are summed
// in the same statement so a row never mixes amounts from different moments.
func (r *PgxInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string, includeArchived bool) ([]domain.InvoiceSummary, *string, error) {
	args := []any{ownerID, includeArchived}
	query := `
		SELECT ` + invoiceColumns + `,
			COALESCE(l.total, 0)::numeric,
			COALESCE(p.paid, 0)::numeric
		FROM invoices i
		LEFT JOIN LATERAL (
			SELECT SUM(line_total) AS total FROM invoice_lines WHERE invoice_id = i.invoice_id
		) l ON TRUE
		LEFT JOIN LATERAL (
			SELECT SUM(amount) AS paid FROM payments WHERE invoice_id = i.invoice_id
		) p ON TRUE
		WHERE i.user_id = $1 AND ($2 OR NOT i.is_archived)`

	if nextToken != nil && *nextToken != "" {
		createdAt, invoiceID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError(err.Error())
		}
		args = append(args, createdAt, invoiceID)
		query += fmt.Sprintf(` AND (i.created_at, i.invoice_id) < ($%d, $%d::uuid)`, len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY i.created_at DESC, i.invoice_id DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewPersistenceError("failed to list invoices", err)
	}
	defer rows.Close()

	summaries := []domain.InvoiceSummary{}
	for rows.Next() {
		var total, paid decimal.Decimal
		invoice, err := scanInvoice(rows, &total, &paid)
		if err != nil {
			return nil, nil, apperrors.NewPersistenceError("failed to scan invoice row", err)
		}
		summaries = append(summaries, domain.InvoiceSummary{
			Invoice: *invoice,
			Totals: domain.InvoiceTotals{
				Total:      total,
				AmountPaid: paid,
				BalanceDue: total.Sub(paid),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewPersistenceError("error iterating invoice rows", err)
	}

	var next *string
	if len(summaries) > limit {
		summaries = summaries[:limit]
		last := summaries[len(summaries)-1].Invoice
		token := pagination.EncodeToken(last.CreatedAt, last.InvoiceID)
		next = &token
	}
	return summaries, next, nil
}

// pgxInvoiceTx is the transaction-bound side of PgxInvoiceRepository.
type pgxInvoiceTx struct {
	tx pgx.Tx
}

var _ portsrepo.InvoiceTxRepository = (*pgxInvoiceTx)(nil)

// LockInvoice takes a row lock held until commit or rollback. Concurrent
// payments for the same invoice queue here.
func (t *pgxInvoiceTx) LockInvoice(ctx context.Context, invoiceID string, ownerID string) (*domain.Invoice, error) {
	return findInvoice(ctx, t.tx, invoiceID, ownerID, true)
}

func (t *pgxInvoiceTx) FindLineItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	return findLineItems(ctx, t.tx, invoiceID)
}

func (t *pgxInvoiceTx) FindPayments(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	return findPayments(ctx, t.tx, invoiceID)
}

func (t *pgxInvoiceTx) InsertInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_id, user_id, invoice_number, customer_name, customer_email, customer_address,
			issue_date, due_date, status, is_archived, currency_code, tax_rate,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := t.tx.Exec(ctx, query,
		m.InvoiceID,
		m.UserID,
		m.InvoiceNumber,
		m.CustomerName,
		m.CustomerEmail,
		m.CustomerAddress,
		m.IssueDate,
		m.DueDate,
		m.Status,
		m.IsArchived,
		m.CurrencyCode,
		m.TaxRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("invoice number '%s' already exists", invoice.InvoiceNumber))
		}
		return apperrors.NewPersistenceError("failed to insert invoice", err)
	}
	return nil
}

func (t *pgxInvoiceTx) InsertLineItems(ctx context.Context, lineItems []domain.LineItem) error {
	query := `
		INSERT INTO invoice_lines (line_item_id, invoice_id, line_no, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, m := range mapping.ToModelInvoiceLines(lineItems) {
		batch.Queue(query, m.LineItemID, m.InvoiceID, m.LineNo, m.Description, m.Quantity, m.UnitPrice, m.LineTotal)
	}

	results := t.tx.SendBatch(ctx, batch)
	for range lineItems {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return apperrors.NewPersistenceError("failed to insert line item", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewPersistenceError("failed to insert line items", err)
	}
	return nil
}

func (t *pgxInvoiceTx) InsertPayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, invoice_id, amount, payment_date)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := t.tx.Exec(ctx, query, m.PaymentID, m.InvoiceID, m.Amount, m.PaymentDate); err != nil {
		return apperrors.NewPersistenceError("failed to insert payment", err)
	}
	return nil
}

func (t *pgxInvoiceTx) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error {
	query := `
		UPDATE invoices
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE invoice_id = $4;
	`
	cmdTag, err := t.tx.Exec(ctx, query, models.InvoiceStatus(status), time.Now().UTC(), updatedBy, invoiceID)
	if err != nil {
		return apperrors.NewPersistenceError("failed to update invoice status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFoundInvoice(invoiceID)
	}
	return nil
}

func (t *pgxInvoiceTx) SetInvoiceArchived(ctx context.Context, invoiceID string, archived bool, updatedBy string) (*domain.Invoice, error) {
	query := `
		UPDATE invoices i
		SET is_archived = $1, last_updated_at = $2, last_updated_by = $3
		WHERE i.invoice_id = $4
		RETURNING ` + invoiceColumns + `;`

	invoice, err := scanInvoice(t.tx.QueryRow(ctx, query, archived, time.Now().UTC(), updatedBy, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundInvoice(invoiceID)
		}
		return nil, apperrors.NewPersistenceError("failed to update archive flag", err)
	}
	return invoice, nil
}
