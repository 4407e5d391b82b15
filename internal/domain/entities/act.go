package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActStatus represents the lifecycle of a KS-2 act.
//
// The engine only ever creates acts in draft; approval/locking workflows
// live outside this service.
type ActStatus string

const (
	ActStatusDraft ActStatus = "draft"
)

// Act is the KS-2 completed-work act persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PeriodFrom/PeriodTo are derived from the min/max work date of the entries
// the act consumed, not from the caller-supplied cutoff: real consumption
// dates may differ from the requested period bound.
type Act struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contract_id"`
	Number      string          `json:"number"`
	Date        time.Time       `json:"date"`
	PeriodFrom  time.Time       `json:"period_from"`
	PeriodTo    time.Time       `json:"period_to"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      ActStatus       `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
