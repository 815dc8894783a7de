// Package memory provides process-local implementations of the repository
// ports. Every unit of work runs under one store-wide lock and is applied
// only when it succeeds, which gives the same observable atomicity and
// per-invoice serialization as the PostgreSQL implementation.
package memory

import (
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: NewInvoiceRepository(),
		UserRepo:    NewUserRepository(),
	}
}
