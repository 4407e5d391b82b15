package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/stroyset/acts-service/internal/domain/entities"
	"github.com/stroyset/acts-service/internal/usecase/interfaces"
)

var (
	ErrMissingContractID = errors.New("contractId is required")
)

//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_usecases.go -package=mocks github.com/stroyset/acts-service/internal/usecase IAllocationUseCase,IActUseCase

// IAllocationUseCase exposes the read-only side of the allocation engine:
// compute which open work entries a new KS-2 act would consume, without
// writing anything.
type IAllocationUseCase interface {
	Preview(ctx context.Context, contractID string, periodTo *time.Time) (entities.AllocationResult, error)
}

// AllocationUseCase loads the contract's limit table, seeds running usage
// from historically attached entries, and runs the allocation pass over the
// open work-entry stream.
type AllocationUseCase struct {
	estimateRepo  interfaces.IEstimateRepository
	workEntryRepo interfaces.IWorkEntryRepository
}

var _ IAllocationUseCase = (*AllocationUseCase)(nil)

func NewAllocationUseCase(estimateRepo interfaces.IEstimateRepository, workEntryRepo interfaces.IWorkEntryRepository) *AllocationUseCase {
	return &AllocationUseCase{estimateRepo: estimateRepo, workEntryRepo: workEntryRepo}
}

func (u *AllocationUseCase) Preview(ctx context.Context, contractID string, periodTo *time.Time) (entities.AllocationResult, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.AllocationResult{}, ErrMissingContractID
	}

	log.Printf("[allocation][usecase] preview start contract_id=%s period_to=%v", contractID, periodTo)

	estimates, err := u.estimateRepo.ListByContractID(ctx, contractID)
	if err != nil {
		log.Printf("[allocation][usecase] failed loading estimates contract_id=%s err=%v", contractID, err)
		return entities.AllocationResult{}, err
	}

	limits := make(map[string]entities.EstimateLimit, len(estimates))
	estimateIDs := make([]string, 0, len(estimates))
	for _, e := range estimates {
		limits[e.ID] = e
		estimateIDs = append(estimateIDs, e.ID)
	}

	if len(estimateIDs) == 0 {
		// Contract has no limit table; nothing can be allocated.
		log.Printf("[allocation][usecase] no estimates for contract_id=%s", contractID)
		return allocate(nil, limits, nil), nil
	}

	used, err := u.workEntryRepo.SumAttachedQuantities(ctx, estimateIDs)
	if err != nil {
		log.Printf("[allocation][usecase] failed loading historical usage contract_id=%s err=%v", contractID, err)
		return entities.AllocationResult{}, err
	}

	open, err := u.workEntryRepo.ListOpenByEstimateIDs(ctx, estimateIDs, periodTo)
	if err != nil {
		log.Printf("[allocation][usecase] failed loading open entries contract_id=%s err=%v", contractID, err)
		return entities.AllocationResult{}, err
	}

	result := allocate(open, limits, used)
	log.Printf("[allocation][usecase] preview done contract_id=%s candidates=%d skipped=%d total=%s",
		contractID, result.Stats.CandidatesCount, result.Stats.SkippedCount, result.TotalAmount)
	return result, nil
}
