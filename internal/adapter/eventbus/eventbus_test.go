package eventbus

import (
	"testing"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus(t *testing.T) {
	t.Run("FanOut", func(t *testing.T) {
		bus := New()
		defer bus.Close()

		ch1, cancel1 := bus.Subscribe(domain.CollectionProducts)
		defer cancel1()
		ch2, cancel2 := bus.Subscribe(domain.CollectionProducts)
		defer cancel2()

		evt := domain.ChangeEvent{
			Collection: domain.CollectionProducts, At: time.Now(),
		}
		bus.Publish(evt)

		require.Equal(t, evt, <-ch1)
		require.Equal(t, evt, <-ch2)
	})

	t.Run("FilteredByCollection", func(t *testing.T) {
		bus := New()
		defer bus.Close()

		products, cancel := bus.Subscribe(domain.CollectionProducts)
		defer cancel()

		bus.Publish(domain.ChangeEvent{Collection: domain.CollectionOrders})
		bus.Publish(domain.ChangeEvent{Collection: domain.CollectionProducts})

		evt := <-products
		assert.Equal(t, domain.CollectionProducts, evt.Collection)
		assert.Empty(t, products)
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		bus := New()
		defer bus.Close()

		ch, cancel := bus.Subscribe(domain.CollectionCoupons)
		cancel()
		cancel() // idempotent

		_, open := <-ch
		assert.False(t, open)

		// publishing after unsubscribe must not panic
		bus.Publish(domain.ChangeEvent{Collection: domain.CollectionCoupons})
	})

	t.Run("FullBufferDoesNotBlock", func(t *testing.T) {
		bus := New()
		defer bus.Close()

		_, cancel := bus.Subscribe(domain.CollectionOrders)
		defer cancel()

		done := make(chan struct{})
		go func() {
			for range subscriberBuf + 10 {
				bus.Publish(domain.ChangeEvent{Collection: domain.CollectionOrders})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("publish blocked on a full subscriber")
		}
	})

	t.Run("CloseClosesSubscribers", func(t *testing.T) {
		bus := New()
		ch, _ := bus.Subscribe(domain.CollectionAdmins)

		bus.Close()
		bus.Close() // idempotent

		_, open := <-ch
		assert.False(t, open)

		ch2, cancel2 := bus.Subscribe(domain.CollectionAdmins)
		defer cancel2()
		_, open = <-ch2
		assert.False(t, open)
	})
}
