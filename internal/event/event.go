// Package event provides a synchronous topic-based publish/subscribe
// bus. Handlers run in the publisher's goroutine in subscription
// order; the bus never blocks and never spawns goroutines. It exists
// so observers (renderer, scripting, logging) can react to engine
// transactions without the engine knowing about them.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Topic names an event stream.
type Topic string

// Topics published by the application.
const (
	TopicBufferChanged  Topic = "buffer.changed"
	TopicConfigReloaded Topic = "config.reloaded"
	TopicAppQuit        Topic = "app.quit"
)

// Event is the envelope delivered to subscribers.
type Event struct {
	// ID uniquely identifies this event instance.
	ID uuid.UUID

	// Topic is the stream this event was published on.
	Topic Topic

	// Payload is the topic-specific data.
	Payload any

	// Time is when the event was published.
	Time time.Time
}

// New creates an event envelope for a topic.
func New(topic Topic, payload any) Event {
	return Event{
		ID:      uuid.New(),
		Topic:   topic,
		Payload: payload,
		Time:    time.Now(),
	}
}
