package observer

import (
	"errors"
	"fmt"

	"github.com/codifire/designpatterns/observer/types"
)

// Sentinel errors.
var (
	ErrUnknownChannel = errors.New("observer: unknown channel")
	ErrNilObserver    = errors.New("observer: nil observer")
)

// Server is a notification hub of polymorphic observers. Each named channel
// and the catch-all channel own a Subject.
//
// Push is synchronous: observers run on the caller's goroutine, in
// registration order, the named channel first and then the catch-all.
// A Server is safe for concurrent use.
type Server[T any] struct {
	*router[T, *Subject[T]]
}

// NewServer creates a Server with the default channels (Arts, Gadgets and
// the catch-all Anything) unless overridden by opts.
func NewServer[T any](opts ...types.ServerOption) *Server[T] {
	return &Server[T]{router: newRouter[T](NewSubject[T], "server", opts...)}
}

// Register appends o to ch. ch must be a named channel or the catch-all.
// Nil observers, typed nil pointers included, are rejected.
func (s *Server[T]) Register(ch types.Channel, o types.Observer[T]) error {
	if isNilObserver(o) {
		return ErrNilObserver
	}
	list, ok := s.list(ch)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, ch)
	}
	list.Add(o)
	return nil
}

// Unregister removes the first registration of o on ch.
// Returns false when o is not registered there.
func (s *Server[T]) Unregister(ch types.Channel, o types.Observer[T]) bool {
	list, ok := s.list(ch)
	if !ok {
		return false
	}
	return list.Remove(o)
}

// Push notifies the observers of ch and, per the catch-all policy, those of
// the catch-all channel. Returns the number of observer calls.
func (s *Server[T]) Push(ch types.Channel, payload T) int {
	return s.push(ch, payload)
}
