package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories around an
// externally owned pool. The caller closes the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
