package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandidateKind classifies how a candidate's quantity relates to the
// estimate budget.
type CandidateKind string

const (
	// CandidateKindNormal is the portion that fits inside the estimate's
	// remaining budget.
	CandidateKindNormal CandidateKind = "normal"
	// CandidateKindOverrun is the portion beyond the remaining budget
	// (including all quantity against a zero-budget estimate).
	CandidateKindOverrun CandidateKind = "overrun"
)

// AllocationCandidate is a (possibly partial) quantity of one work entry
// selected for inclusion in an act. A split entry yields two candidates with
// the same SourceEntryID: the normal portion and the overrun remainder.
//
// Candidates are derived data; nothing is persisted until commit, and at
// commit only the source entries are attached.
type AllocationCandidate struct {
	SourceEntryID string `json:"source_entry_id"`
	EstimateID    string `json:"estimate_id"`

	// EstimateNumber and Section drive the presentation sort.
	EstimateNumber string `json:"estimate_number"`
	Section        string `json:"section"`

	Name string `json:"name"`
	Unit string `json:"unit"`

	Kind            CandidateKind   `json:"kind"`
	DisplayQuantity decimal.Decimal `json:"display_quantity"`
	Price           decimal.Decimal `json:"price"`
	Amount          decimal.Decimal `json:"amount"`

	WorkDate time.Time `json:"work_date"`
}

// SkippedEntry is a work entry the allocator could not place, with a
// human-readable reason.
type SkippedEntry struct {
	EntryID    string          `json:"entry_id"`
	EstimateID string          `json:"estimate_id,omitempty"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	WorkDate   time.Time       `json:"work_date"`
	Reason     string          `json:"reason"`
}

// AllocationStats are the summary counters returned alongside a preview.
type AllocationStats struct {
	CandidatesCount int `json:"candidates_count"`
	SkippedCount    int `json:"skipped_count"`
}

// AllocationResult is the outcome of one allocation pass. Candidates holds
// all normal candidates followed by all overrun candidates, each group in
// presentation order.
type AllocationResult struct {
	Candidates  []AllocationCandidate `json:"candidates"`
	Skipped     []SkippedEntry        `json:"skipped"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Stats       AllocationStats       `json:"stats"`
}
