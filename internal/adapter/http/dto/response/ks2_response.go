package response

import (
	"time"

	"github.com/stroyset/acts-service/internal/domain/entities"
)

// Amounts and quantities are rendered as float64 only here, at the display
// edge; the engine computes on decimals throughout.

type CandidateResponse struct {
	ID             string  `json:"id"`
	EstimateID     string  `json:"estimateId"`
	EstimateNumber string  `json:"estimateNumber"`
	Section        string  `json:"section"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	Kind           string  `json:"kind"`
	Quantity       float64 `json:"quantity"`
	Price          float64 `json:"price"`
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
}

type SkippedResponse struct {
	ID         string  `json:"id"`
	EstimateID string  `json:"estimateId,omitempty"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	Date       string  `json:"date"`
	Reason     string  `json:"reason"`
}

type StatsResponse struct {
	CandidatesCount int `json:"candidatesCount"`
	SkippedCount    int `json:"skippedCount"`
}

type PreviewResponse struct {
	Candidates  []CandidateResponse `json:"candidates"`
	Skipped     []SkippedResponse   `json:"skipped"`
	TotalAmount float64             `json:"totalAmount"`
	Stats       StatsResponse       `json:"stats"`
}

type CreateActResponse struct {
	Success    bool   `json:"success"`
	ActID      string `json:"actId"`
	ItemsCount int    `json:"itemsCount"`
}

func FromAllocationResult(r entities.AllocationResult) PreviewResponse {
	candidates := make([]CandidateResponse, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		candidates = append(candidates, CandidateResponse{
			ID:             c.SourceEntryID,
			EstimateID:     c.EstimateID,
			EstimateNumber: c.EstimateNumber,
			Section:        c.Section,
			Name:           c.Name,
			Unit:           c.Unit,
			Kind:           string(c.Kind),
			Quantity:       c.DisplayQuantity.InexactFloat64(),
			Price:          c.Price.InexactFloat64(),
			Amount:         c.Amount.InexactFloat64(),
			Date:           formatDate(c.WorkDate),
		})
	}

	skipped := make([]SkippedResponse, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		skipped = append(skipped, SkippedResponse{
			ID:         s.EntryID,
			EstimateID: s.EstimateID,
			Name:       s.Name,
			Unit:       s.Unit,
			Quantity:   s.Quantity.InexactFloat64(),
			Date:       formatDate(s.WorkDate),
			Reason:     s.Reason,
		})
	}

	return PreviewResponse{
		Candidates:  candidates,
		Skipped:     skipped,
		TotalAmount: r.TotalAmount.InexactFloat64(),
		Stats: StatsResponse{
			CandidatesCount: r.Stats.CandidatesCount,
			SkippedCount:    r.Stats.SkippedCount,
		},
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
