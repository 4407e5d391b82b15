package request

import (
	"errors"
	"strings"
	"time"
)

const (
	ActionPreview = "preview"
	ActionCreate  = "create"
)

var (
	ErrMissingContractID = errors.New("contractId is required")
	ErrMissingActFields  = errors.New("actNumber and actDate are required for creation")
	ErrInvalidDate       = errors.New("invalid date value")
)

// KS2Request is the action-discriminated payload accepted by the KS-2
// endpoint. Field names mirror the mobile client's wire contract.
//
// action=preview needs only contractId; action=create additionally needs
// actNumber and actDate. periodTo is an optional upper work-date bound in
// either RFC 3339 or YYYY-MM-DD form.
type KS2Request struct {
	Action     string `json:"action" binding:"required"`
	ContractID string `json:"contractId"`
	PeriodTo   string `json:"periodTo"`
	ActNumber  string `json:"actNumber"`
	ActDate    string `json:"actDate"`
}

func (r KS2Request) ResolveContractID() string {
	return strings.TrimSpace(r.ContractID)
}

func (r KS2Request) ResolvePeriodTo() (*time.Time, error) {
	v := strings.TrimSpace(r.PeriodTo)
	if v == "" {
		return nil, nil
	}
	t, err := parseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r KS2Request) ResolveActFields() (number string, date time.Time, err error) {
	number = strings.TrimSpace(r.ActNumber)
	rawDate := strings.TrimSpace(r.ActDate)
	if number == "" || rawDate == "" {
		return "", time.Time{}, ErrMissingActFields
	}
	date, err = parseDate(rawDate)
	if err != nil {
		return "", time.Time{}, err
	}
	return number, date, nil
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
