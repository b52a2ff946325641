package interfaces

import (
	"context"
	"descomplaca/internal/domain/entities"
)

// OrderFilter narrows the dispatcher-facing lead list. Only OPEN orders
// are ever listed; city/state are optional matching hints.
type OrderFilter struct {
	City  string
	State string
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Orders are never deleted; status updates are the only mutation.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListOpen(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
