package entities

import "time"

// OrderStatus represents the lifecycle of a service order (pedido).
//
// Domain notes:
//   - The marketplace core is the source of truth for order state.
//   - Transitions are driven exclusively by the order lifecycle use case;
//     no other component mutates status.

type OrderStatus string

const (
	OrderStatusOpen             OrderStatus = "OPEN"
	OrderStatusProposalReceived OrderStatus = "PROPOSAL_RECEIVED"
	OrderStatusPaid             OrderStatus = "PAID"
	OrderStatusInProgress       OrderStatus = "IN_PROGRESS"
	OrderStatusConcluded        OrderStatus = "CONCLUDED"
	OrderStatusFinished         OrderStatus = "FINISHED"
	OrderStatusCancelled        OrderStatus = "CANCELLED"
)

// orderTransitions is the directed graph of legal status changes.
// Administrative cancellation is handled separately (any non-terminal
// state may move to CANCELLED).
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusOpen:             {OrderStatusProposalReceived},
	OrderStatusProposalReceived: {OrderStatusPaid},
	OrderStatusPaid:             {OrderStatusInProgress},
	OrderStatusInProgress:       {OrderStatusConcluded},
	OrderStatusConcluded:        {OrderStatusFinished},
	OrderStatusFinished:         {},
	OrderStatusCancelled:        {},
}

// CanTransition reports whether from -> to is a legal forward step.
// Re-entering the current status is treated as a no-op, not an error.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if to == OrderStatusCancelled {
		return !from.IsTerminal()
	}
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFinished || s == OrderStatusCancelled
}

// InExecutionPhase reports whether the order has been paid for, which
// is the gate for the secure chat between client and dispatcher.
func (s OrderStatus) InExecutionPhase() bool {
	switch s {
	case OrderStatusPaid, OrderStatusInProgress, OrderStatusConcluded, OrderStatusFinished:
		return true
	}
	return false
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Order is a client's vehicle-documentation service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type Order struct {
	ID             string      `json:"id"`
	VehiclePlate   string      `json:"vehicle_plate"`
	VehicleRenavam string      `json:"vehicle_renavam,omitempty"`
	ServiceType    string      `json:"service_type"`
	Description    string      `json:"description,omitempty"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	OwnerID        string      `json:"owner_id"`
	OwnerEmail     string      `json:"owner_email"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
