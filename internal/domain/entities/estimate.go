package entities

import "github.com/shopspring/decimal"

// EstimateLimit is the per-contract-line quantity budget (LSR line).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// Domain notes:
//   - The limit is immutable from the engine's point of view; it is owned by
//     the contract entity and only read here.
//   - QuantityLimit and UnitPrice stay decimal end to end; the allocation
//     path never rounds them.
type EstimateLimit struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`

	// Number is the LSR line number (e.g. "2.1.10"), used only for the
	// numeric-aware presentation sort of candidates.
	Number  string `json:"number"`
	Section string `json:"section"`
	Name    string `json:"name"`
	Unit    string `json:"unit"`

	QuantityLimit decimal.Decimal `json:"quantity_limit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}
