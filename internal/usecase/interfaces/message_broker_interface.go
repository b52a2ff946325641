package interfaces

import "descomplaca/internal/domain/entities"

// IMessageBroker is the real-time fan-out channel for chat, keyed by
// order id.
//
// Publish is fire-and-forget: the send path considers the message
// durable once the repository write succeeds, delivery to subscribers
// is decoupled. Subscribers receive messages for their order only, in
// publish order, until the returned unsubscribe function is called.
type IMessageBroker interface {
	Publish(orderID string, m entities.Message)
	Subscribe(orderID string, fn func(entities.Message)) (unsubscribe func())
}
