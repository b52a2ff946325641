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
	"descomplaca/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		body, _ := json.Marshal(map[string]string{"vehicle_plate": "ABC1234"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().CreateOrder(gomock.Any(), usecase.CreateOrderInput{
			VehiclePlate: "ABC1234",
			ServiceType:  "licenciamento",
			City:         "Vitória",
			State:        "ES",
			OwnerID:      "client-1",
			OwnerEmail:   "client@mail.com",
		}).Return(entities.Order{ID: "order-1", VehiclePlate: "ABC1234", Status: entities.OrderStatusOpen}, nil)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		body, _ := json.Marshal(map[string]string{
			"vehicle_plate": "ABC1234",
			"service_type":  "licenciamento",
			"city":          "Vitória",
			"state":         "ES",
			"owner_id":      "client-1",
			"owner_email":   "client@mail.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "order-1" || resp["status"] != "OPEN" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetOrder(gomock.Any(), "order-1").Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/orders/:order_id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "ORDER_NOT_FOUND" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().GetOrder(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)

		r := gin.New()
		r.GET("/v1/orders/:order_id", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOpenOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
	h := NewOrderHandler(uc)

	uc.EXPECT().ListOpenOrders(gomock.Any(), interfaces.OrderFilter{City: "Serra", State: "ES"}).
		Return([]entities.Order{{ID: "order-1", Status: entities.OrderStatusOpen}}, nil)

	r := gin.New()
	r.GET("/v1/orders", h.ListOpenOrders)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders?city=Serra&state=ES", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "order-1" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestOrderHandler_AdvanceExecution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().AdvanceExecution(gomock.Any(), "order-1", entities.OrderStatusConcluded).
			Return(entities.Order{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.POST("/v1/orders/:order_id/advance", h.AdvanceExecution)

		body, _ := json.Marshal(map[string]string{"status": "CONCLUDED"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/advance", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().AdvanceExecution(gomock.Any(), "order-1", entities.OrderStatusInProgress).
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusInProgress}, nil)

		r := gin.New()
		r.POST("/v1/orders/:order_id/advance", h.AdvanceExecution)

		body, _ := json.Marshal(map[string]string{"status": "IN_PROGRESS"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/advance", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
	h := NewOrderHandler(uc)

	uc.EXPECT().CancelOrder(gomock.Any(), "order-1").
		Return(entities.Order{ID: "order-1", Status: entities.OrderStatusCancelled}, nil)

	r := gin.New()
	r.POST("/v1/orders/:order_id/cancel", h.CancelOrder)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "CANCELLED" {
		t.Fatalf("unexpected response: %v", resp)
	}
}
