package observer

import (
	"fmt"

	"github.com/codifire/designpatterns/delegate"
	"github.com/codifire/designpatterns/observer/types"
)

// DelegateServer is a notification hub whose listeners are delegate
// bindings instead of Observer values, so any function or method of
// signature func(T) can listen without implementing an interface.
// Routing is identical to Server.
type DelegateServer[T any] struct {
	*router[T, *Subscription[T]]
}

func NewDelegateServer[T any](opts ...types.ServerOption) *DelegateServer[T] {
	return &DelegateServer[T]{router: newRouter[T](NewSubscription[T], "subscription", opts...)}
}

// Subscribe appends a to ch. Fails with delegate.ErrUnbound for unbound
// actions and ErrUnknownChannel for channels the hub does not carry.
func (s *DelegateServer[T]) Subscribe(ch types.Channel, a delegate.Action[T]) error {
	list, ok := s.list(ch)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, ch)
	}
	return list.Subscribe(a)
}

// Unsubscribe removes the first binding on ch equal to a.
func (s *DelegateServer[T]) Unsubscribe(ch types.Channel, a delegate.Action[T]) bool {
	list, ok := s.list(ch)
	if !ok {
		return false
	}
	return list.Unsubscribe(a)
}

// Push behaves as Server.Push.
func (s *DelegateServer[T]) Push(ch types.Channel, payload T) int {
	return s.push(ch, payload)
}
