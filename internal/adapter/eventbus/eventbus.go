// Package eventbus is the in-process change-notification bus. Every
// collection write publishes an event; views and watchers subscribe and
// re-read the collection instead of receiving diffs.
package eventbus

import (
	"log/slog"
	"sync"

	"github.com/glowmart/storefront/internal/core/domain"
)

const subscriberBuf = 8

type subscriber struct {
	id int
	ch chan domain.ChangeEvent
}

type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscriber
	closed bool
}

func New() *Bus {
	return &Bus{subs: make(map[string][]subscriber)}
}

// Subscribe registers a listener for one collection. The returned
// cancel func is idempotent and releases the subscription.
func (b *Bus) Subscribe(collection string) (<-chan domain.ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := subscriber{
		id: b.nextID,
		ch: make(chan domain.ChangeEvent, subscriberBuf),
	}
	b.nextID++

	if b.closed {
		close(sub.ch)
		return sub.ch, func() {}
	}

	b.subs[collection] = append(b.subs[collection], sub)

	var once sync.Once
	cancel := func() {
		once.Do(func() { b.unsubscribe(collection, sub.id) })
	}
	return sub.ch, cancel
}

// Publish fans the event out to every subscriber of its collection.
// Sends never block: a subscriber with a full buffer misses intermediate
// ticks, which is fine because the next read fetches the latest state.
func (b *Bus) Publish(evt domain.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, sub := range b.subs[evt.Collection] {
		select {
		case sub.ch <- evt:
		default:
			slog.Debug("change event dropped",
				"collection", evt.Collection, "subscriber", sub.id)
		}
	}
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, subs := range b.subs {
		for _, sub := range subs {
			close(sub.ch)
		}
	}
	b.subs = nil
}

func (b *Bus) unsubscribe(collection string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	subs := b.subs[collection]
	for i, sub := range subs {
		if sub.id == id {
			b.subs[collection] = append(subs[:i], subs[i+1:]...)
			close(sub.ch)
			return
		}
	}
}
