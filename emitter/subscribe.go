package emitter

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultBufferSize = 64

// Event is a notification delivered through a subscription channel.
type Event[T any] struct {
	Name      string
	Payload   T
	Timestamp time.Time
}

// Subscribe forwards notifications for names into a buffered channel.
//
// Delivery is non-blocking: notifications are dropped while the channel is
// full. The listeners are removed and the channel closed when ctx is done.
func Subscribe[T any](ctx context.Context, e *Emitter[T], names ...string) <-chan Event[T] {
	return SubscribeWithBuffer(ctx, e, defaultBufferSize, names...)
}

// SubscribeWithBuffer is Subscribe with a custom channel capacity.
func SubscribeWithBuffer[T any](ctx context.Context, e *Emitter[T], size int, names ...string) <-chan Event[T] {
	ch := make(chan Event[T], size)

	var (
		mu     sync.Mutex
		closed bool
	)
	ids := make([]ListenerID, len(names))
	for i, name := range names {
		ids[i] = e.On(name, func(payload T) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case ch <- Event[T]{Name: name, Payload: payload, Timestamp: time.Now()}:
			default:
				// Channel full - drop to prevent blocking the emitter.
			}
		})
	}

	go func() {
		<-ctx.Done()
		for i, name := range names {
			e.Off(name, ids[i])
		}
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

// ListenCmd returns a Bubble Tea command that waits for the next event on ch.
// It yields nil when ctx is cancelled or ch is closed.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			return ev
		}
	}
}
