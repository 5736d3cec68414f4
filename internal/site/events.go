package site

import "time"

// LoadedEvent is emitted exactly once per build pass, after every section
// has been populated and the output written.
type LoadedEvent struct {
	BuildID    string
	Components []string
	Errored    []string
	Timestamp  time.Time
}

// Bus delivers loaded events to subscribers synchronously, in subscription
// order. It is not safe for concurrent subscription after builds start;
// subscribe everything up front.
type Bus struct {
	subscribers []func(LoadedEvent)
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for future loaded events.
func (b *Bus) Subscribe(fn func(LoadedEvent)) {
	b.subscribers = append(b.subscribers, fn)
}

// Notify delivers the event to every subscriber.
func (b *Bus) Notify(ev LoadedEvent) {
	for _, fn := range b.subscribers {
		fn(ev)
	}
}
