package services

import (
	"log/slog"

	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, auditLogger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	audit := NewSlogAuditSink(auditLogger)

	// Account service first since posting and registries depend on it for
	// lazy ledger resolution.
	container.AccountSvc = NewAccountService(repos.AccountRepo)

	container.PartySvc = NewPartyService(repos.PartyRepo, container.AccountSvc)
	container.ItemSvc = NewItemService(repos.ItemRepo)

	container.PostingSvc = NewPostingService(repos.PostingRepo, repos.PartyRepo, repos.ItemRepo, container.AccountSvc, audit)
	container.ReversalSvc = NewReversalService(repos.PostingRepo, repos.PartyRepo, audit)
	container.ReconciliationSvc = NewReconciliationService(repos.ReconciliationRepo, audit)
	container.ReportingSvc = NewReportingService(repos.ReportingRepo)

	return container
}
