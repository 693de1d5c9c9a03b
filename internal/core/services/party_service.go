package services

import (
	"context"
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

// partyService manages customers and suppliers. Every party gets its own
// backing ledger account so postings can hit the party ledger directly.
type partyService struct {
	BaseService
	partyRepo  portsrepo.PartyRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo, accountSvc: accountSvc}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, businessID string, req dto.CreatePartyRequest, actor string) (*domain.Party, error) {
	kind := domain.PartyKind(req.Kind)
	var accType domain.AccountType
	switch kind {
	case domain.Customer:
		accType = domain.AccountCustomer
	case domain.Supplier:
		accType = domain.AccountSupplier
	default:
		return nil, apperrors.NewAppError(400, fmt.Sprintf("unknown party kind %s", req.Kind), apperrors.ErrValidation)
	}
	account, err := s.accountSvc.GetOrCreateAccount(ctx, businessID, accType, req.Name, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	party := domain.Party{
		PartyID:    uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Kind:       kind,
		Phone:      req.Phone,
		AccountID:  account.AccountID,
		TotalDues:  decimal.Zero,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "failed to save party", "name", req.Name)
		return nil, err
	}
	s.LogInfo(ctx, "party created", "partyID", party.PartyID, "kind", string(kind))
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, businessID string, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("party %s not found", partyID))
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, businessID string, kind *domain.PartyKind) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, businessID, 500, 0)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return parties, nil
	}
	filtered := make([]domain.Party, 0, len(parties))
	for _, p := range parties {
		if p.Kind == *kind {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
