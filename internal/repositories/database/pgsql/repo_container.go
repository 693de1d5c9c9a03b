package pgsql

import (
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	postingRepo := newPgxPostingRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	itemRepo := newPgxItemRepository(dbPool)
	reconciliationRepo := newPgxReconciliationRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:        accountRepo,
		PostingRepo:        postingRepo,
		PartyRepo:          partyRepo,
		ItemRepo:           itemRepo,
		ReconciliationRepo: reconciliationRepo,
		ReportingRepo:      reportingRepo,
	}
}
