package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkEntry is a single logged unit of completed work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Lifecycle: created unattached (ActID empty), later attached to exactly one
// act. Attachment is terminal; the engine never detaches or reattaches an
// entry.
type WorkEntry struct {
	ID string `json:"id"`

	// EstimateID may be empty: the foreman can log work that was never
	// estimated. Such entries are reported as skipped, not allocated.
	EstimateID string `json:"estimate_id,omitempty"`

	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`

	// Price is the price recorded on the entry itself. When nil the
	// estimate's unit price applies.
	Price *decimal.Decimal `json:"price,omitempty"`

	WorkDate time.Time `json:"work_date"`

	// ActID is the act this entry is attached to; empty while open.
	ActID string `json:"act_id,omitempty"`
}

// Attached reports whether the entry is already consumed by an act.
func (e WorkEntry) Attached() bool {
	return e.ActID != ""
}
