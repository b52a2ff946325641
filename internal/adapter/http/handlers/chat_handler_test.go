package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"descomplaca/internal/adapter/http/handlers/mocks"
	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChatHandler_SendMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.SendMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("chat locked before payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		uc.EXPECT().Send(gomock.Any(), "order-1", "client-1", entities.SenderRoleClient, "oi").
			Return(entities.Message{}, usecase.ErrChatNotUnlocked)

		r := gin.New()
		r.POST("/v1/chat", h.SendMessage)

		body, _ := json.Marshal(map[string]string{
			"order_id":    "order-1",
			"sender_id":   "client-1",
			"sender_role": "client",
			"content":     "oi",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "CHAT_NOT_UNLOCKED" {
			t.Fatalf("unexpected error code: %v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		uc.EXPECT().Send(gomock.Any(), "order-1", "disp-1", entities.SenderRoleDispatcher, "chego amanhã").
			Return(entities.Message{
				ID:         "msg-1",
				OrderID:    "order-1",
				SenderID:   "disp-1",
				SenderRole: entities.SenderRoleDispatcher,
				Content:    "chego amanhã",
				Timestamp:  time.Now().UTC(),
			}, nil)

		r := gin.New()
		r.POST("/v1/chat", h.SendMessage)

		body, _ := json.Marshal(map[string]string{
			"order_id":    "order-1",
			"sender_id":   "disp-1",
			"sender_role": "dispatcher",
			"content":     "chego amanhã",
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "msg-1" || resp["sender_role"] != "dispatcher" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestChatHandler_GetHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		uc.EXPECT().History(gomock.Any(), "order-1").Return(nil, usecase.ErrChatNotUnlocked)

		r := gin.New()
		r.GET("/v1/chat/:order_id", h.GetHistory)

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		uc.EXPECT().History(gomock.Any(), "order-1").Return([]entities.Message{
			{ID: "msg-1", OrderID: "order-1"},
			{ID: "msg-2", OrderID: "order-1"},
		}, nil)

		r := gin.New()
		r.GET("/v1/chat/:order_id", h.GetHistory)

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(resp))
		}
	})
}
