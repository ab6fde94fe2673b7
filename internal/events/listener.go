package events

// Listener is the named-callback view of the four notification channels,
// for collaborators that prefer methods over topic strings.
type Listener interface {
	OnCatalogChanged(CatalogChangedPayload)
	OnCartChanged(CartChangedPayload)
	OnOrderTotalChanged(OrderTotalChangedPayload)
	OnOrderCleared(OrderClearedPayload)
}

// BindListener subscribes l to all four topics and returns a function that
// detaches it again.
func BindListener(b *Bus, l Listener) func() {
	unsubs := []func(){
		b.Subscribe(TopicCatalogChanged, func(e Envelope) {
			if p, ok := e.Payload.(CatalogChangedPayload); ok {
				l.OnCatalogChanged(p)
			}
		}),
		b.Subscribe(TopicCartChanged, func(e Envelope) {
			if p, ok := e.Payload.(CartChangedPayload); ok {
				l.OnCartChanged(p)
			}
		}),
		b.Subscribe(TopicOrderTotalChanged, func(e Envelope) {
			if p, ok := e.Payload.(OrderTotalChangedPayload); ok {
				l.OnOrderTotalChanged(p)
			}
		}),
		b.Subscribe(TopicOrderCleared, func(e Envelope) {
			if p, ok := e.Payload.(OrderClearedPayload); ok {
				l.OnOrderCleared(p)
			}
		}),
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
