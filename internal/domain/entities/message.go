package entities

import "time"

// SenderRole identifies which side of the order a chat message came from.

type SenderRole string

const (
	SenderRoleClient     SenderRole = "client"
	SenderRoleDispatcher SenderRole = "dispatcher"
)

func (r SenderRole) IsValid() bool {
	return r == SenderRoleClient || r == SenderRoleDispatcher
}

// Message is a chat message exchanged during the execution phase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Messages are append-only and ordered by Timestamp ascending within
// an order. No moderation is applied here: by the time chat unlocks the
// transaction is already monetized.
type Message struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	SenderID   string     `json:"sender_id"`
	SenderRole SenderRole `json:"sender_role"`
	Content    string     `json:"content"`
	Timestamp  time.Time  `json:"timestamp"`
}
