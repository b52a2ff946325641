package usecase

import (
	"context"
	"errors"
	"testing"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/infrastructure/messaging"
	mock_interfaces "descomplaca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_Send(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)

		if _, err := uc.Send(context.Background(), "", "client-1", entities.SenderRoleClient, "oi"); !errors.Is(err, ErrInvalidMessageInput) {
			t.Fatalf("expected ErrInvalidMessageInput, got %v", err)
		}
		if _, err := uc.Send(context.Background(), "order-1", "client-1", entities.SenderRole("robot"), "oi"); !errors.Is(err, ErrInvalidMessageInput) {
			t.Fatalf("expected ErrInvalidMessageInput, got %v", err)
		}
		if _, err := uc.Send(context.Background(), "order-1", "client-1", entities.SenderRoleClient, "   "); !errors.Is(err, ErrInvalidMessageInput) {
			t.Fatalf("expected ErrInvalidMessageInput, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewChatUseCase(orders, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.Send(context.Background(), "order-1", "client-1", entities.SenderRoleClient, "oi")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("locked before payment", func(t *testing.T) {
		for _, status := range []entities.OrderStatus{
			entities.OrderStatusOpen,
			entities.OrderStatusProposalReceived,
			entities.OrderStatusCancelled,
		} {
			ctrl := gomock.NewController(t)
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewChatUseCase(orders, nil, nil, nil)

			orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1", Status: status}, nil)

			_, err := uc.Send(context.Background(), "order-1", "client-1", entities.SenderRoleClient, "oi")
			if !errors.Is(err, ErrChatNotUnlocked) {
				t.Fatalf("status %s: expected ErrChatNotUnlocked, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("success publishes to broker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		messages := mock_interfaces.NewMockIMessageRepository(ctrl)
		broker := mock_interfaces.NewMockIMessageBroker(ctrl)
		uc := NewChatUseCase(orders, messages, broker, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)
		messages.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Message{})).DoAndReturn(
			func(_ context.Context, m entities.Message) (entities.Message, error) {
				if m.ID == "" || m.Timestamp.IsZero() {
					t.Fatalf("expected id and timestamp: %+v", m)
				}
				if m.SenderRole != entities.SenderRoleDispatcher || m.Content != "chego amanhã" {
					t.Fatalf("unexpected message: %+v", m)
				}
				return m, nil
			},
		)
		broker.EXPECT().Publish("order-1", gomock.AssignableToTypeOf(entities.Message{}))

		res, err := uc.Send(context.Background(), "order-1", "disp-1", entities.SenderRoleDispatcher, " chego amanhã ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderID != "order-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestChatUseCase_History(t *testing.T) {
	t.Run("locked before payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewChatUseCase(orders, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusProposalReceived}, nil)

		_, err := uc.History(context.Background(), "order-1")
		if !errors.Is(err, ErrChatNotUnlocked) {
			t.Fatalf("expected ErrChatNotUnlocked, got %v", err)
		}
	})

	t.Run("unlocked through FINISHED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		messages := mock_interfaces.NewMockIMessageRepository(ctrl)
		uc := NewChatUseCase(orders, messages, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusFinished}, nil)
		messages.EXPECT().ListByOrderID(gomock.Any(), "order-1").
			Return([]entities.Message{{ID: "msg-1"}, {ID: "msg-2"}}, nil)

		res, err := uc.History(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(res))
		}
	})
}

func TestChatUseCase_Subscribe(t *testing.T) {
	t.Run("locked order detaches the subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewChatUseCase(orders, nil, messaging.NewBroker(), nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusOpen}, nil)

		_, err := uc.Subscribe(context.Background(), "order-1", func(entities.Message) {})
		if !errors.Is(err, ErrChatNotUnlocked) {
			t.Fatalf("expected ErrChatNotUnlocked, got %v", err)
		}
	})

	t.Run("replays history before live messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		messages := mock_interfaces.NewMockIMessageRepository(ctrl)
		broker := messaging.NewBroker()
		uc := NewChatUseCase(orders, messages, broker, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)
		messages.EXPECT().ListByOrderID(gomock.Any(), "order-1").
			Return([]entities.Message{{ID: "msg-1"}, {ID: "msg-2"}}, nil)

		var got []string
		done := make(chan struct{})
		unsubscribe, err := uc.Subscribe(context.Background(), "order-1", func(m entities.Message) {
			got = append(got, m.ID)
			if m.ID == "msg-3" {
				close(done)
			}
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer unsubscribe()

		broker.Publish("order-1", entities.Message{ID: "msg-3", OrderID: "order-1"})
		<-done

		if len(got) < 3 || got[0] != "msg-1" || got[1] != "msg-2" {
			t.Fatalf("expected history first, got %v", got)
		}
		if got[len(got)-1] != "msg-3" {
			t.Fatalf("expected live message last, got %v", got)
		}
	})
}
