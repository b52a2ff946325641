// Package messaging is the in-process real-time transport for the
// secure chat: a publish/subscribe channel keyed by order id.
package messaging

import (
	"sync"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"
)

const subscriberBuffer = 256

type subscriber struct {
	ch   chan entities.Message
	done chan struct{}
	once sync.Once
}

// Broker fans messages out to order-scoped subscribers. Each subscriber
// has its own goroutine draining a buffered queue, so delivery keeps
// per-order publish ordering without coupling publishers to slow
// consumers. A subscriber that falls more than subscriberBuffer
// messages behind backpressures the publisher rather than dropping.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[uint64]*subscriber
	next uint64
}

var _ interfaces.IMessageBroker = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[uint64]*subscriber)}
}

func (b *Broker) Publish(orderID string, m entities.Message) {
	b.mu.RLock()
	targets := make([]*subscriber, 0, len(b.subs[orderID]))
	for _, s := range b.subs[orderID] {
		targets = append(targets, s)
	}
	b.mu.RUnlock()

	for _, s := range targets {
		select {
		case s.ch <- m:
		case <-s.done:
		}
	}
}

// Subscribe attaches fn to the order's stream. Messages from other
// orders are never delivered. The returned function detaches the
// subscriber and stops its delivery goroutine; it is safe to call more
// than once.
func (b *Broker) Subscribe(orderID string, fn func(entities.Message)) func() {
	s := &subscriber{
		ch:   make(chan entities.Message, subscriberBuffer),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	if b.subs[orderID] == nil {
		b.subs[orderID] = make(map[uint64]*subscriber)
	}
	id := b.next
	b.next++
	b.subs[orderID][id] = s
	b.mu.Unlock()

	go func() {
		for {
			select {
			case m := <-s.ch:
				fn(m)
			case <-s.done:
				return
			}
		}
	}()

	return func() {
		b.mu.Lock()
		if _, ok := b.subs[orderID][id]; ok {
			delete(b.subs[orderID], id)
			if len(b.subs[orderID]) == 0 {
				delete(b.subs, orderID)
			}
		}
		b.mu.Unlock()
		s.once.Do(func() { close(s.done) })
	}
}
