package httpx

import (
	"sync"

	"github.com/safar/go-pos-register/internal/events"
)

// Feed buffers the most recent notification envelopes across all topics so a
// renderer can poll what changed since it last looked. It records under its
// own lock and never calls back into the publisher.
type Feed struct {
	mu      sync.Mutex
	entries []events.Envelope
	cap     int
}

func NewFeed(bus *events.Bus, capacity int) *Feed {
	if capacity <= 0 {
		capacity = 64
	}
	f := &Feed{cap: capacity}
	for _, topic := range events.Topics() {
		bus.Subscribe(topic, f.record)
	}
	return f
}

func (f *Feed) record(e events.Envelope) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, e)
	if len(f.entries) > f.cap {
		f.entries = f.entries[len(f.entries)-f.cap:]
	}
}

// Recent returns the buffered envelopes, oldest first.
func (f *Feed) Recent() []events.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]events.Envelope, len(f.entries))
	copy(out, f.entries)
	return out
}
