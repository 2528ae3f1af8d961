package services

import (
	portsrepo "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/repositories"
	portssvc "github.com/DesignDeskHQ/design_desk_app/internal/core/ports/services"
	"github.com/DesignDeskHQ/design_desk_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Studio service goes first since the other services depend on it for
	// authorization checks.
	container.Studio = NewStudioService(repos.StudioRepo)

	studioAuthorizer := container.Studio.(portssvc.StudioAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Statement = NewStatementService(repos.BankTransactionRepo, studioAuthorizer)
	container.Payment = NewPaymentService(repos.PaymentRepo, studioAuthorizer)
	container.Reconciliation = NewReconciliationService(repos.BankTransactionRepo, repos.PaymentRepo, studioAuthorizer)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
