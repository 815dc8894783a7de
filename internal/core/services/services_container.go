package services

import (
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice:     NewInvoiceLedgerService(repos.InvoiceRepo),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg),
		Rates:       NewRateService(),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceLedgerSvcFacade      = (*invoiceLedgerService)(nil)
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
)
