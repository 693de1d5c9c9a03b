package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	accType := domain.AccountType(req.Type)
	group := accType.Group()
	if group == "" {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("unknown account type %s", req.Type), apperrors.ErrValidation)
	}
	existing, err := s.accountRepo.FindAccountByTypeAndName(ctx, businessID, accType, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, fmt.Sprintf("account %s of type %s already exists", req.Name, req.Type), apperrors.ErrDuplicate)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:          uuid.NewString(),
		BusinessID:         businessID,
		Name:               req.Name,
		Group:              group,
		Type:               accType,
		OpeningBalance:     req.OpeningBalance,
		OpeningBalanceDate: now,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if req.OpeningBalanceDate != nil {
		account.OpeningBalanceDate = *req.OpeningBalanceDate
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", "name", req.Name)
		return nil, err
	}
	s.LogInfo(ctx, "account created", "accountID", account.AccountID, "type", string(accType), "name", req.Name)
	return &account, nil
}

// GetOrCreateAccount resolves the ledger for a role account, creating it as a
// system account on first use. Role ledgers must never block a posting.
func (s *accountService) GetOrCreateAccount(ctx context.Context, businessID string, accType domain.AccountType, name string, actor string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByTypeAndName(ctx, businessID, accType, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	group := accType.Group()
	if group == "" {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("unknown account type %s", accType), apperrors.ErrValidation)
	}
	now := time.Now()
	created := domain.Account{
		AccountID:          uuid.NewString(),
		BusinessID:         businessID,
		Name:               name,
		Group:              group,
		Type:               accType,
		OpeningBalance:     decimal.Zero,
		OpeningBalanceDate: now,
		IsSystem:           true,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
		// Concurrent first use of the same ledger: the other writer won, read
		// back its row.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByTypeAndName(ctx, businessID, accType, name)
		}
		return nil, err
	}
	s.LogDebug(ctx, "ledger account created on first use", "accountID", created.AccountID, "type", string(accType), "name", name)
	return &created, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, businessID, 500, 0)
}

// DeactivateAccount soft-deletes an account. System role ledgers stay active
// since postings depend on them.
func (s *accountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, actor string) error {
	account, err := s.GetAccountByID(ctx, businessID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return apperrors.NewAppError(400, "system accounts cannot be deactivated", apperrors.ErrValidation)
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actor, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to deactivate account", "accountID", accountID)
		return err
	}
	s.LogInfo(ctx, "account deactivated", "accountID", accountID)
	return nil
}
