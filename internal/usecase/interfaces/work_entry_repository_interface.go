package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stroyset/acts-service/internal/domain/entities"
)

//go:generate mockgen -source=work_entry_repository_interface.go -destination=mocks/mock_work_entry_repository.go -package=mock_interfaces

// IWorkEntryRepository abstracts DynamoDB persistence for WorkEntry.
//
// Both query operations take an estimate-id set and must behave identically
// for any internal chunking of that set: the backend caps `IN` filters, so
// implementations batch lookups, and the results (sums, concatenated lists)
// are associative across batches.
type IWorkEntryRepository interface {
	// SumAttachedQuantities returns estimateID -> total quantity of entries
	// already attached to any act. Estimates with no attached entries are
	// absent from the map.
	SumAttachedQuantities(ctx context.Context, estimateIDs []string) (map[string]decimal.Decimal, error)

	// ListOpenByEstimateIDs returns unattached entries for the given
	// estimates, optionally bounded by work date, sorted ascending by work
	// date with a stable order for equal dates.
	ListOpenByEstimateIDs(ctx context.Context, estimateIDs []string, periodTo *time.Time) ([]entities.WorkEntry, error)

	// AttachToAct marks the given entries as consumed by actID. Each batch
	// is conditional: it fails wholesale if any entry in it is already
	// attached.
	AttachToAct(ctx context.Context, actID string, entryIDs []string) error
}
