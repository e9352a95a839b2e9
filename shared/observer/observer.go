// Package observer is a small publish/subscribe registry. Listeners are called synchronously,
// in subscription order, on the goroutine that publishes.
package observer

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Handle identifies one subscription.
type Handle string

type Func[T any] func(ctx context.Context, event T)

type entry[T any] struct {
	handle Handle
	fn     Func[T]
}

// Registry is safe for concurrent use. The zero value is ready to use.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
}

func (r *Registry[T]) Subscribe(fn Func[T]) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := Handle(uuid.NewString())
	r.entries = append(r.entries, entry[T]{handle: handle, fn: fn})

	return handle
}

// Unsubscribe removes the listener and reports whether it was registered.
func (r *Registry[T]) Unsubscribe(handle Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.entries, func(e entry[T]) bool { return e.handle == handle })
	if idx < 0 {
		return false
	}

	r.entries = slices.Delete(r.entries, idx, idx+1)

	return true
}

// Notify calls every listener registered at the time of the call. The lock is not held while
// listeners run, so a listener may subscribe or unsubscribe.
func (r *Registry[T]) Notify(ctx context.Context, event T) {
	r.mu.RLock()
	snapshot := slices.Clone(r.entries)
	r.mu.RUnlock()

	for _, e := range snapshot {
		e.fn(ctx, event)
	}
}
