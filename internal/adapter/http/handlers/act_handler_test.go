package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/stroyset/acts-service/internal/adapter/http/handlers/mocks"
	"github.com/stroyset/acts-service/internal/domain/entities"
	"github.com/stroyset/acts-service/internal/usecase"
)

func newKS2Router(h *ActHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/acts/ks2", h.GenerateKS2)
	return r
}

func postKS2(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/acts/ks2", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed decoding error body: %v", err)
	}
	return body.Code
}

func TestActHandler_GenerateKS2_Dispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), mocks.NewMockIActUseCase(ctrl))

		w := postKS2(newKS2Router(h), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), mocks.NewMockIActUseCase(ctrl))

		w := postKS2(newKS2Router(h), `{"contractId":"c-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), mocks.NewMockIActUseCase(ctrl))

		w := postKS2(newKS2Router(h), `{"action":"approve","contractId":"c-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "UNKNOWN_ACTION" {
			t.Fatalf("expected UNKNOWN_ACTION, got %s", code)
		}
	})
}

func TestActHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing contract id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		allocUC := mocks.NewMockIAllocationUseCase(ctrl)
		h := NewActHandler(allocUC, mocks.NewMockIActUseCase(ctrl))

		allocUC.EXPECT().Preview(gomock.Any(), "", nil).Return(entities.AllocationResult{}, usecase.ErrMissingContractID)

		w := postKS2(newKS2Router(h), `{"action":"preview"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "MISSING_CONTRACT_ID" {
			t.Fatalf("expected MISSING_CONTRACT_ID, got %s", code)
		}
	})

	t.Run("invalid periodTo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), mocks.NewMockIActUseCase(ctrl))

		w := postKS2(newKS2Router(h), `{"action":"preview","contractId":"c-1","periodTo":"next tuesday"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		allocUC := mocks.NewMockIAllocationUseCase(ctrl)
		h := NewActHandler(allocUC, mocks.NewMockIActUseCase(ctrl))

		result := entities.AllocationResult{
			Candidates: []entities.AllocationCandidate{{
				SourceEntryID:   "w-1",
				EstimateID:      "est-1",
				Kind:            entities.CandidateKindNormal,
				DisplayQuantity: decimal.NewFromInt(20),
				Price:           decimal.NewFromInt(10),
				Amount:          decimal.NewFromInt(200),
			}},
			TotalAmount: decimal.NewFromInt(200),
			Stats:       entities.AllocationStats{CandidatesCount: 1},
		}
		allocUC.EXPECT().Preview(gomock.Any(), "c-1", nil).Return(result, nil)

		w := postKS2(newKS2Router(h), `{"action":"preview","contractId":"c-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Candidates []struct {
				ID       string  `json:"id"`
				Kind     string  `json:"kind"`
				Quantity float64 `json:"quantity"`
			} `json:"candidates"`
			TotalAmount float64 `json:"totalAmount"`
			Stats       struct {
				CandidatesCount int `json:"candidatesCount"`
			} `json:"stats"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if len(body.Candidates) != 1 || body.Candidates[0].ID != "w-1" || body.Candidates[0].Quantity != 20 {
			t.Fatalf("unexpected candidates: %+v", body.Candidates)
		}
		if body.TotalAmount != 200 || body.Stats.CandidatesCount != 1 {
			t.Fatalf("unexpected totals: %+v", body)
		}
	})

	t.Run("storage error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		allocUC := mocks.NewMockIAllocationUseCase(ctrl)
		h := NewActHandler(allocUC, mocks.NewMockIActUseCase(ctrl))

		allocUC.EXPECT().Preview(gomock.Any(), "c-1", nil).Return(entities.AllocationResult{}, errors.New("dynamo down"))

		w := postKS2(newKS2Router(h), `{"action":"preview","contractId":"c-1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestActHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing act fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), mocks.NewMockIActUseCase(ctrl))

		w := postKS2(newKS2Router(h), `{"action":"create","contractId":"c-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "MISSING_ACT_FIELDS" {
			t.Fatalf("expected MISSING_ACT_FIELDS, got %s", code)
		}
	})

	t.Run("no eligible entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actUC := mocks.NewMockIActUseCase(ctrl)
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), actUC)

		actUC.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.ActCreation{}, usecase.ErrNoEligibleEntries)

		w := postKS2(newKS2Router(h), `{"action":"create","contractId":"c-1","actNumber":"7","actDate":"2024-03-31"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "NO_ELIGIBLE_ENTRIES" {
			t.Fatalf("expected NO_ELIGIBLE_ENTRIES, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actUC := mocks.NewMockIActUseCase(ctrl)
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), actUC)

		actUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.CreateActCommand) (usecase.ActCreation, error) {
				if cmd.ContractID != "c-1" || cmd.ActNumber != "7" {
					t.Fatalf("command not populated: %+v", cmd)
				}
				if cmd.PeriodTo == nil || cmd.PeriodTo.Format("2006-01-02") != "2024-03-15" {
					t.Fatalf("periodTo not parsed: %v", cmd.PeriodTo)
				}
				return usecase.ActCreation{ActID: "act-1", ItemsCount: 3}, nil
			})

		w := postKS2(newKS2Router(h), `{"action":"create","contractId":"c-1","periodTo":"2024-03-15","actNumber":"7","actDate":"2024-03-31"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Success    bool   `json:"success"`
			ActID      string `json:"actId"`
			ItemsCount int    `json:"itemsCount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed decoding body: %v", err)
		}
		if !body.Success || body.ActID != "act-1" || body.ItemsCount != 3 {
			t.Fatalf("unexpected response: %+v", body)
		}
	})

	t.Run("attach failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actUC := mocks.NewMockIActUseCase(ctrl)
		h := NewActHandler(mocks.NewMockIAllocationUseCase(ctrl), actUC)

		actUC.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.ActCreation{}, errors.New("attach failed"))

		w := postKS2(newKS2Router(h), `{"action":"create","contractId":"c-1","actNumber":"7","actDate":"2024-03-31"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
