package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"descomplaca/internal/adapter/http/handlers/mocks"
	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProposalHandler_SubmitProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.SubmitProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrOrderNotOpenForProposals)

		r := gin.New()
		r.POST("/v1/proposals", h.SubmitProposal)

		body, _ := json.Marshal(map[string]any{
			"order_id":       "order-1",
			"dispatcher_id":  "disp-1",
			"fee_value":      150,
			"tax_value":      300,
			"estimated_days": 3,
			"description":    "Resolvo rápido",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "ORDER_NOT_OPEN" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("blocked proposal still returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().SubmitProposal(gomock.Any(), usecase.SubmitProposalInput{
			OrderID:       "order-1",
			DispatcherID:  "disp-1",
			FeeValue:      150,
			TaxValue:      300,
			EstimatedDays: 3,
			Description:   "Me chama no (27) 99999-1234",
		}).Return(entities.Proposal{
			ID:          "prop-1",
			OrderID:     "order-1",
			Description: "[conteúdo removido pela moderação]",
			Status:      entities.ProposalStatusBlocked,
			TotalValue:  450,
		}, nil)

		r := gin.New()
		r.POST("/v1/proposals", h.SubmitProposal)

		body, _ := json.Marshal(map[string]any{
			"order_id":       "order-1",
			"dispatcher_id":  "disp-1",
			"fee_value":      150,
			"tax_value":      300,
			"estimated_days": 3,
			"description":    "Me chama no (27) 99999-1234",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["moderation_status"] != "BLOCKED" {
			t.Fatalf("expected BLOCKED, got %v", resp)
		}
		if resp["description"] != "[conteúdo removido pela moderação]" {
			t.Fatalf("expected redacted description, got %v", resp["description"])
		}
		if resp["total_value"].(float64) != 450 {
			t.Fatalf("price signal must survive moderation: %v", resp)
		}
	})
}

func TestProposalHandler_ListProposalsByOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
	h := NewProposalHandler(uc)

	uc.EXPECT().ListProposals(gomock.Any(), "order-1").Return([]entities.Proposal{
		{ID: "prop-1", OrderID: "order-1", Status: entities.ProposalStatusActive},
	}, nil)

	r := gin.New()
	r.GET("/v1/proposals/order/:order_id", h.ListProposalsByOrder)

	req := httptest.NewRequest(http.MethodGet, "/v1/proposals/order/order-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "prop-1" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestProposalHandler_WithdrawProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepted proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().WithdrawProposal(gomock.Any(), "prop-1", "disp-1").
			Return(entities.Proposal{}, usecase.ErrProposalAlreadyAccepted)

		r := gin.New()
		r.POST("/v1/proposals/:proposal_id/withdraw", h.WithdrawProposal)

		body, _ := json.Marshal(map[string]string{"dispatcher_id": "disp-1"})
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/withdraw", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().WithdrawProposal(gomock.Any(), "prop-1", "disp-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusWithdrawn}, nil)

		r := gin.New()
		r.POST("/v1/proposals/:proposal_id/withdraw", h.WithdrawProposal)

		body, _ := json.Marshal(map[string]string{"dispatcher_id": "disp-1"})
		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/withdraw", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["moderation_status"] != "WITHDRAWN" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}
