package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps every published notification.
type Envelope struct {
	EventID    string    `json:"event_id"`
	Topic      string    `json:"topic"`
	OccurredAt time.Time `json:"occurred_at"`
	Producer   string    `json:"producer"`
	Payload    any       `json:"payload"`
}

// Handler receives envelopes for one topic. Handlers run synchronously on
// the publishing goroutine, in subscription order, and the publisher may
// still hold its state lock: a handler records what it was told and returns,
// it never calls back into the coordinator.
type Handler func(Envelope)

// Bus is the in-process notification channel between the order coordinator
// and presentation collaborators.
type Bus struct {
	producer string

	mu   sync.RWMutex
	next int
	subs map[string][]subscription
}

type subscription struct {
	id int
	fn Handler
}

func NewBus(producer string) *Bus {
	return &Bus{producer: producer, subs: make(map[string][]subscription)}
}

// Subscribe registers h for topic and returns a function that removes the
// subscription again.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: h})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, s := range list {
			if s.id == id {
				b.subs[topic] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish wraps payload in an envelope and delivers it to every subscriber
// of topic, synchronously and in subscription order.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	list := make([]subscription, len(b.subs[topic]))
	copy(list, b.subs[topic])
	b.mu.RUnlock()

	env := Envelope{
		EventID:    uuid.NewString(),
		Topic:      topic,
		OccurredAt: time.Now().UTC(),
		Producer:   b.producer,
		Payload:    payload,
	}
	for _, s := range list {
		s.fn(env)
	}
}
