package request

import (
	"errors"
	"testing"
	"time"
)

func TestKS2Request_ResolveContractID(t *testing.T) {
	r := KS2Request{ContractID: "  c-1  "}
	if got := r.ResolveContractID(); got != "c-1" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
}

func TestKS2Request_ResolvePeriodTo(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		r := KS2Request{}
		got, err := r.ResolvePeriodTo()
		if err != nil || got != nil {
			t.Fatalf("expected nil/nil, got %v/%v", got, err)
		}
	})

	t.Run("date only", func(t *testing.T) {
		r := KS2Request{PeriodTo: "2024-03-15"}
		got, err := r.ResolvePeriodTo()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		r := KS2Request{PeriodTo: "2024-03-15T10:30:00Z"}
		got, err := r.ResolvePeriodTo()
		if err != nil || got == nil {
			t.Fatalf("unexpected result: %v/%v", got, err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		r := KS2Request{PeriodTo: "next tuesday"}
		_, err := r.ResolvePeriodTo()
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestKS2Request_ResolveActFields(t *testing.T) {
	t.Run("both present", func(t *testing.T) {
		r := KS2Request{ActNumber: " 7 ", ActDate: "2024-03-31"}
		number, date, err := r.ResolveActFields()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "7" || !date.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected fields: %q %v", number, date)
		}
	})

	t.Run("missing number", func(t *testing.T) {
		r := KS2Request{ActDate: "2024-03-31"}
		if _, _, err := r.ResolveActFields(); !errors.Is(err, ErrMissingActFields) {
			t.Fatalf("expected ErrMissingActFields, got %v", err)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		r := KS2Request{ActNumber: "7"}
		if _, _, err := r.ResolveActFields(); !errors.Is(err, ErrMissingActFields) {
			t.Fatalf("expected ErrMissingActFields, got %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r := KS2Request{ActNumber: "7", ActDate: "31.03.2024"}
		if _, _, err := r.ResolveActFields(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
