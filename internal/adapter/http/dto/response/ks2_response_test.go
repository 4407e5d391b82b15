package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stroyset/acts-service/internal/domain/entities"
)

func TestFromAllocationResult(t *testing.T) {
	wd := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	result := entities.AllocationResult{
		Candidates: []entities.AllocationCandidate{{
			SourceEntryID:   "w-1",
			EstimateID:      "est-1",
			EstimateNumber:  "2.9",
			Section:         "HVAC",
			Name:            "duct install",
			Unit:            "m",
			Kind:            entities.CandidateKindOverrun,
			DisplayQuantity: decimal.RequireFromString("1.5"),
			Price:           decimal.RequireFromString("100.10"),
			Amount:          decimal.RequireFromString("150.15"),
			WorkDate:        wd,
		}},
		Skipped: []entities.SkippedEntry{{
			EntryID:  "w-2",
			Name:     "unplanned digging",
			Quantity: decimal.NewFromInt(3),
			WorkDate: wd,
			Reason:   "work entry is not linked to an estimate of this contract",
		}},
		TotalAmount: decimal.RequireFromString("150.15"),
		Stats:       entities.AllocationStats{CandidatesCount: 1, SkippedCount: 1},
	}

	resp := FromAllocationResult(result)

	if len(resp.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(resp.Candidates))
	}
	c := resp.Candidates[0]
	if c.ID != "w-1" || c.Kind != "overrun" || c.Quantity != 1.5 || c.Amount != 150.15 {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	if c.Date != "2024-03-05T00:00:00Z" {
		t.Fatalf("unexpected date format: %s", c.Date)
	}

	if len(resp.Skipped) != 1 {
		t.Fatalf("expected 1 skipped, got %d", len(resp.Skipped))
	}
	if resp.Skipped[0].Reason == "" || resp.Skipped[0].Quantity != 3 {
		t.Fatalf("unexpected skipped: %+v", resp.Skipped[0])
	}

	if resp.TotalAmount != 150.15 {
		t.Fatalf("unexpected total: %v", resp.TotalAmount)
	}
	if resp.Stats.CandidatesCount != 1 || resp.Stats.SkippedCount != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

func TestFromAllocationResult_Empty(t *testing.T) {
	resp := FromAllocationResult(entities.AllocationResult{})
	if resp.Candidates == nil || resp.Skipped == nil {
		t.Fatalf("empty result must serialize as [] not null")
	}
	if resp.TotalAmount != 0 {
		t.Fatalf("unexpected total: %v", resp.TotalAmount)
	}
}
