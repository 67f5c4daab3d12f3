package event

// Handler receives published events.
type Handler func(Event)

// Unsubscribe removes a subscription. Safe to call more than once.
type Unsubscribe func()

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous topic bus. It is single-threaded like the rest
// of the application core: publish and subscribe are only called from
// the main loop.
type Bus struct {
	nextID uint64
	subs   map[Topic][]subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers a handler for a topic and returns a function
// that removes the subscription.
func (b *Bus) Subscribe(topic Topic, h Handler) Unsubscribe {
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})

	return func() {
		subs := b.subs[topic]
		for i, s := range subs {
			if s.id == id {
				b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers an event to every handler subscribed to its topic,
// in subscription order.
func (b *Bus) Publish(topic Topic, payload any) {
	subs := b.subs[topic]
	if len(subs) == 0 {
		return
	}
	ev := New(topic, payload)
	// Copy so a handler subscribing or unsubscribing mid-delivery
	// cannot shift the slice under us.
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.handler(ev)
	}
}

// SubscriberCount returns the number of handlers on a topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	return len(b.subs[topic])
}
