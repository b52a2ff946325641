package interfaces

import (
	"context"
	"descomplaca/internal/domain/entities"
)

// IMessageRepository abstracts DynamoDB persistence for chat messages.
//
// ListByOrderID must return messages ordered by timestamp ascending;
// subscription replay depends on it.

type IMessageRepository interface {
	Create(ctx context.Context, m entities.Message) (entities.Message, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Message, error)
}
