package repositories

import (
	"context"
)

// InvoiceUnitOfWork runs a set of invoice writes as one atomic unit.
// fn receives a repository bound to the open transaction; the transaction is
// committed when fn returns nil and rolled back otherwise, so a failed unit of
// work leaves the store exactly as it was.
type InvoiceUnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx InvoiceTxRepository) error) error
}
