package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stroyset/acts-service/internal/domain/entities"
)

// allocate partitions open work entries against the contract's estimate
// budgets.
//
// The pass is strictly sequential: budget is consumed oldest entry first
// (the caller supplies entries sorted ascending by work date), and the
// running usage per estimate carries an order dependency, so this must not
// be parallelized across entries of the same estimate.
//
// Classification rules:
//   - entry not linked to any estimate of the contract -> skipped;
//   - estimate with zero budget -> the whole quantity is overrun;
//   - quantity within the remaining budget -> normal;
//   - quantity beyond it -> split into a normal portion (the remainder of
//     the budget) and an overrun portion, both referencing the same entry.
//
// Quantities that come out non-positive never produce candidates. Running
// usage is local to the pass; two passes over the same input yield the same
// result.
func allocate(
	entries []entities.WorkEntry,
	limits map[string]entities.EstimateLimit,
	historicalUsed map[string]decimal.Decimal,
) entities.AllocationResult {
	running := make(map[string]decimal.Decimal, len(limits))
	for id := range limits {
		running[id] = historicalUsed[id]
	}

	var (
		normal  []entities.AllocationCandidate
		overrun []entities.AllocationCandidate
		skipped []entities.SkippedEntry
	)
	total := decimal.Zero

	push := func(list []entities.AllocationCandidate, e entities.WorkEntry, limit entities.EstimateLimit, kind entities.CandidateKind, qty, price decimal.Decimal) []entities.AllocationCandidate {
		amount := qty.Mul(price)
		total = total.Add(amount)
		return append(list, entities.AllocationCandidate{
			SourceEntryID:   e.ID,
			EstimateID:      e.EstimateID,
			EstimateNumber:  limit.Number,
			Section:         limit.Section,
			Name:            e.Name,
			Unit:            e.Unit,
			Kind:            kind,
			DisplayQuantity: qty,
			Price:           price,
			Amount:          amount,
			WorkDate:        e.WorkDate,
		})
	}

	for _, e := range entries {
		limit, ok := limits[e.EstimateID]
		if e.EstimateID == "" || !ok {
			skipped = append(skipped, entities.SkippedEntry{
				EntryID:    e.ID,
				EstimateID: e.EstimateID,
				Name:       e.Name,
				Unit:       e.Unit,
				Quantity:   e.Quantity,
				WorkDate:   e.WorkDate,
				Reason:     "work entry is not linked to an estimate of this contract",
			})
			continue
		}

		if e.Quantity.Sign() <= 0 {
			continue
		}

		price := candidatePrice(e, limit)

		if limit.QuantityLimit.Sign() <= 0 {
			// Zero budget: unplanned work, everything counts as overrun.
			overrun = push(overrun, e, limit, entities.CandidateKindOverrun, e.Quantity, price)
			running[e.EstimateID] = running[e.EstimateID].Add(e.Quantity)
			continue
		}

		remaining := limit.QuantityLimit.Sub(running[e.EstimateID])
		if remaining.Sign() < 0 {
			remaining = decimal.Zero
		}

		switch {
		case e.Quantity.LessThanOrEqual(remaining):
			// Boundary goes to normal, not overrun.
			normal = push(normal, e, limit, entities.CandidateKindNormal, e.Quantity, price)
		default:
			if remaining.Sign() > 0 {
				normal = push(normal, e, limit, entities.CandidateKindNormal, remaining, price)
			}
			overrun = push(overrun, e, limit, entities.CandidateKindOverrun, e.Quantity.Sub(remaining), price)
		}
		running[e.EstimateID] = running[e.EstimateID].Add(e.Quantity)
	}

	sortCandidates(normal)
	sortCandidates(overrun)

	candidates := make([]entities.AllocationCandidate, 0, len(normal)+len(overrun))
	candidates = append(candidates, normal...)
	candidates = append(candidates, overrun...)

	return entities.AllocationResult{
		Candidates:  candidates,
		Skipped:     skipped,
		TotalAmount: total,
		Stats: entities.AllocationStats{
			CandidatesCount: len(candidates),
			SkippedCount:    len(skipped),
		},
	}
}

// candidatePrice resolves the effective unit price: the entry's own recorded
// price wins, then the estimate's unit price, then zero.
func candidatePrice(e entities.WorkEntry, limit entities.EstimateLimit) decimal.Decimal {
	if e.Price != nil {
		return *e.Price
	}
	return limit.UnitPrice
}

// sortCandidates orders candidates for presentation: section, then LSR line
// number (numeric-aware), then work name. Sorting happens after all
// quantities are fixed, so it never affects the allocation itself.
func sortCandidates(list []entities.AllocationCandidate) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		if c := compareNumericAware(a.EstimateNumber, b.EstimateNumber); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})
}

// compareNumericAware compares strings treating runs of digits as numbers,
// so "2.10" sorts after "2.9".
func compareNumericAware(a, b string) int {
	for a != "" && b != "" {
		aRun, aNum, aRest := nextRun(a)
		bRun, bNum, bRest := nextRun(b)

		if aNum && bNum {
			at, bt := trimLeadingZeros(aRun), trimLeadingZeros(bRun)
			if len(at) != len(bt) {
				if len(at) < len(bt) {
					return -1
				}
				return 1
			}
			if at != bt {
				if at < bt {
					return -1
				}
				return 1
			}
		} else if aRun != bRun {
			if aRun < bRun {
				return -1
			}
			return 1
		}
		a, b = aRest, bRest
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextRun splits off the leading run of digits or non-digits.
func nextRun(s string) (run string, numeric bool, rest string) {
	if s == "" {
		return "", false, ""
	}
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], numeric, s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
