package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrChatNotUnlocked     = errors.New("chat not unlocked for order")
	ErrInvalidMessageInput = errors.New("invalid message input")
)

// IChatUseCase is the secure messaging surface. Chat only exists once
// the order is paid for; before that the moderated proposal description
// is the only channel between the parties.
//
// No content moderation runs here: once the transaction is monetized,
// contact exchange is the point of the chat.

type IChatUseCase interface {
	Send(ctx context.Context, orderID, senderID string, role entities.SenderRole, content string) (entities.Message, error)
	History(ctx context.Context, orderID string) ([]entities.Message, error)
	Subscribe(ctx context.Context, orderID string, fn func(entities.Message)) (unsubscribe func(), err error)
}

type ChatUseCase struct {
	orders   interfaces.IOrderRepository
	messages interfaces.IMessageRepository
	broker   interfaces.IMessageBroker
	log      *zap.SugaredLogger
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(orders interfaces.IOrderRepository, messages interfaces.IMessageRepository, broker interfaces.IMessageBroker, log *zap.SugaredLogger) *ChatUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ChatUseCase{orders: orders, messages: messages, broker: broker, log: log}
}

// Send records the message and fans it out. The call returns once the
// repository write succeeds; broker delivery is asynchronous.
func (u *ChatUseCase) Send(ctx context.Context, orderID, senderID string, role entities.SenderRole, content string) (entities.Message, error) {
	orderID = strings.TrimSpace(orderID)
	senderID = strings.TrimSpace(senderID)
	content = strings.TrimSpace(content)
	if orderID == "" || senderID == "" || content == "" || !role.IsValid() {
		return entities.Message{}, ErrInvalidMessageInput
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Message{}, err
	}
	if order.ID == "" {
		return entities.Message{}, ErrOrderNotFound
	}
	if !order.Status.InExecutionPhase() {
		return entities.Message{}, ErrChatNotUnlocked
	}

	m := entities.Message{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		SenderID:   senderID,
		SenderRole: role,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
	created, err := u.messages.Create(ctx, m)
	if err != nil {
		return entities.Message{}, err
	}

	u.broker.Publish(orderID, created)
	u.log.Infof("[chat][usecase] message sent order_id=%s sender_role=%s", orderID, role)
	return created, nil
}

func (u *ChatUseCase) History(ctx context.Context, orderID string) ([]entities.Message, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidMessageInput
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	if !order.Status.InExecutionPhase() {
		return nil, ErrChatNotUnlocked
	}
	return u.messages.ListByOrderID(ctx, orderID)
}

// Subscribe replays the full history in timestamp order, then streams
// live messages for this order only, until the returned function is
// called. Each subscriber gets an independent stream.
//
// The live subscription attaches before the history read and buffers
// until replay finishes, so nothing published in between is lost.
// Delivery is at-least-once: a message can land both in the replayed
// history and in the buffer.
func (u *ChatUseCase) Subscribe(ctx context.Context, orderID string, fn func(entities.Message)) (func(), error) {
	var (
		mu        sync.Mutex
		replaying = true
		pending   []entities.Message
	)

	unsubscribe := u.broker.Subscribe(orderID, func(m entities.Message) {
		mu.Lock()
		if replaying {
			pending = append(pending, m)
			mu.Unlock()
			return
		}
		mu.Unlock()
		fn(m)
	})

	history, err := u.History(ctx, orderID)
	if err != nil {
		unsubscribe()
		return nil, err
	}

	for _, m := range history {
		fn(m)
	}

	mu.Lock()
	for _, m := range pending {
		fn(m)
	}
	pending = nil
	replaying = false
	mu.Unlock()

	return unsubscribe, nil
}
