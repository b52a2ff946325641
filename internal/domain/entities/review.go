package entities

import "time"

// Review is the client's one-shot rating of a finished order.
//
// Storage model (DynamoDB):
//   - PK: order_id (one review per order, enforced with a conditional put)
//
// DispatcherID is denormalized from the accepted proposal so dispatcher
// averages can be computed without joins.
type Review struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	DispatcherID string    `json:"dispatcher_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
