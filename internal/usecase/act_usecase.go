package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stroyset/acts-service/internal/domain/entities"
	"github.com/stroyset/acts-service/internal/usecase/interfaces"
)

var (
	ErrMissingActFields  = errors.New("actNumber and actDate are required")
	ErrNoEligibleEntries = errors.New("no eligible work entries for KS-2")
)

// CreateActCommand is the validated input for the commit operation.
type CreateActCommand struct {
	ContractID string
	PeriodTo   *time.Time
	ActNumber  string
	ActDate    time.Time
}

// ActCreation is the commit receipt returned to the caller.
type ActCreation struct {
	ActID      string
	ItemsCount int
}

// IActUseCase encapsulates the commit protocol: recompute the allocation
// against fresh data, persist the act, attach the consumed entries.
type IActUseCase interface {
	Create(ctx context.Context, cmd CreateActCommand) (ActCreation, error)
}

// ActUseCase never trusts a caller-supplied candidate list: the allocation
// is recomputed at commit time so a preview that went stale between requests
// cannot double-count entries.
type ActUseCase struct {
	allocation    IAllocationUseCase
	actRepo       interfaces.IActRepository
	workEntryRepo interfaces.IWorkEntryRepository
}

var _ IActUseCase = (*ActUseCase)(nil)

func NewActUseCase(allocation IAllocationUseCase, actRepo interfaces.IActRepository, workEntryRepo interfaces.IWorkEntryRepository) *ActUseCase {
	return &ActUseCase{allocation: allocation, actRepo: actRepo, workEntryRepo: workEntryRepo}
}

func (u *ActUseCase) Create(ctx context.Context, cmd CreateActCommand) (ActCreation, error) {
	cmd.ContractID = strings.TrimSpace(cmd.ContractID)
	if cmd.ContractID == "" {
		return ActCreation{}, ErrMissingContractID
	}
	cmd.ActNumber = strings.TrimSpace(cmd.ActNumber)
	if cmd.ActNumber == "" || cmd.ActDate.IsZero() {
		return ActCreation{}, ErrMissingActFields
	}

	log.Printf("[act][usecase] create start contract_id=%s number=%s", cmd.ContractID, cmd.ActNumber)

	result, err := u.allocation.Preview(ctx, cmd.ContractID, cmd.PeriodTo)
	if err != nil {
		return ActCreation{}, err
	}
	if len(result.Candidates) == 0 {
		log.Printf("[act][usecase] no eligible entries contract_id=%s", cmd.ContractID)
		return ActCreation{}, ErrNoEligibleEntries
	}

	periodFrom, periodTo := candidatePeriod(result.Candidates)

	act := entities.Act{
		ID:          uuid.NewString(),
		ContractID:  cmd.ContractID,
		Number:      cmd.ActNumber,
		Date:        cmd.ActDate,
		PeriodFrom:  periodFrom,
		PeriodTo:    periodTo,
		TotalAmount: result.TotalAmount,
		Status:      entities.ActStatusDraft,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.actRepo.Create(ctx, act)
	if err != nil {
		log.Printf("[act][usecase] act create failed contract_id=%s err=%v", cmd.ContractID, err)
		return ActCreation{}, err
	}

	entryIDs := distinctSourceEntryIDs(result.Candidates)
	if err := u.workEntryRepo.AttachToAct(ctx, created.ID, entryIDs); err != nil {
		// Compensating rollback: the attach batches are conditional and
		// atomic per batch, so a failure here leaves an act row with no
		// entries. Deleting it is best effort; if the delete fails too the
		// orphan act is left for manual correction and the attach error
		// still wins.
		log.Printf("[act][usecase] attach failed act_id=%s entries=%d err=%v", created.ID, len(entryIDs), err)
		if delErr := u.actRepo.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[act][usecase] compensating delete failed act_id=%s err=%v", created.ID, delErr)
		}
		return ActCreation{}, err
	}

	log.Printf("[act][usecase] create success act_id=%s items=%d total=%s", created.ID, len(result.Candidates), act.TotalAmount)
	return ActCreation{ActID: created.ID, ItemsCount: len(result.Candidates)}, nil
}

// candidatePeriod derives the act period as the min/max work date across
// candidates.
func candidatePeriod(candidates []entities.AllocationCandidate) (from, to time.Time) {
	from, to = candidates[0].WorkDate, candidates[0].WorkDate
	for _, c := range candidates[1:] {
		if c.WorkDate.Before(from) {
			from = c.WorkDate
		}
		if c.WorkDate.After(to) {
			to = c.WorkDate
		}
	}
	return from, to
}

// distinctSourceEntryIDs collapses split candidates back to their underlying
// entries. The whole entry is attached even when only part of its quantity
// was within budget: partial attachment is not persisted.
func distinctSourceEntryIDs(candidates []entities.AllocationCandidate) []string {
	seen := make(map[string]struct{}, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.SourceEntryID]; ok {
			continue
		}
		seen[c.SourceEntryID] = struct{}{}
		ids = append(ids, c.SourceEntryID)
	}
	return ids
}
