package observer

import (
	"slices"
	"sync"

	"github.com/codifire/designpatterns/delegate"
)

// Subscription holds the ordered delegate bindings of one channel.
// The zero value is ready to use.
type Subscription[T any] struct {
	mu      sync.RWMutex
	actions []delegate.Action[T]
	onPanic func(recovered any)
}

// NewSubscription returns an empty Subscription.
func NewSubscription[T any]() *Subscription[T] {
	return &Subscription[T]{}
}

// Subscribe appends a. Unbound actions are rejected with delegate.ErrUnbound
// so that Notify never hits the unbound-invoke panic.
func (s *Subscription[T]) Subscribe(a delegate.Action[T]) error {
	if !a.IsBound() {
		return delegate.ErrUnbound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, a)
	return nil
}

// Unsubscribe removes the first binding Equal to a.
// Returns false if there is none.
func (s *Subscription[T]) Unsubscribe(a delegate.Action[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.actions, a.Equal)
	if i < 0 {
		return false
	}
	s.actions = slices.Delete(s.actions, i, i+1)
	return true
}

// Notify invokes every binding in subscription order from a snapshot and
// returns how many were invoked. See Subject.Notify.
func (s *Subscription[T]) Notify(payload T) int {
	s.mu.RLock()
	if len(s.actions) == 0 {
		s.mu.RUnlock()
		return 0
	}
	snapshot := slices.Clone(s.actions)
	onPanic := s.onPanic
	s.mu.RUnlock()

	for _, a := range snapshot {
		guard(onPanic, func() { a.Invoke(payload) })
	}
	return len(snapshot)
}

// Len returns the number of bindings.
func (s *Subscription[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actions)
}

// Clear removes every binding.
func (s *Subscription[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = nil
}

// SetPanicHandler behaves as Subject.SetPanicHandler.
func (s *Subscription[T]) SetPanicHandler(fn func(recovered any)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPanic = fn
}
