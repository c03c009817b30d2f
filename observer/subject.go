package observer

import (
	"reflect"
	"slices"
	"sync"

	"github.com/codifire/designpatterns/observer/types"
)

// Subject holds the ordered observers of one channel.
// The zero value is ready to use.
type Subject[T any] struct {
	mu        sync.RWMutex
	observers []types.Observer[T]
	onPanic   func(recovered any)
}

// NewSubject returns an empty Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Add appends o. Duplicates are kept: an observer added twice is notified twice.
func (s *Subject[T]) Add(o types.Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Remove removes the first registration equal to o.
// Returns false, and does nothing, if o is not registered.
func (s *Subject[T]) Remove(o types.Observer[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.observers {
		if sameObserver(cur, o) {
			s.observers = slices.Delete(s.observers, i, i+1)
			return true
		}
	}
	return false
}

// Notify calls every observer in registration order on the caller's
// goroutine and returns how many were called.
//
// Observers are called from a snapshot taken before the first call:
// registrations added or removed during fan-out apply from the next Notify.
func (s *Subject[T]) Notify(payload T) int {
	s.mu.RLock()
	if len(s.observers) == 0 {
		s.mu.RUnlock()
		return 0
	}
	snapshot := make([]types.Observer[T], len(s.observers))
	copy(snapshot, s.observers)
	onPanic := s.onPanic
	s.mu.RUnlock()

	for _, o := range snapshot {
		guard(onPanic, func() { o.OnNotify(payload) })
	}
	return len(snapshot)
}

// Len returns the number of registrations.
func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Clear removes every registration.
func (s *Subject[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = nil
}

// SetPanicHandler makes Notify recover observer panics, pass the recovered
// value to fn and continue with the next observer. With a nil fn (the
// default) panics propagate to the caller of Notify.
func (s *Subject[T]) SetPanicHandler(fn func(recovered any)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPanic = fn
}

// guard runs fn, recovering into onPanic when it is set.
func guard(onPanic func(any), fn func()) {
	if onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				onPanic(r)
			}
		}()
	}
	fn()
}

// isNilObserver reports a nil interface or one holding a nil pointer, map,
// slice, func or chan.
func isNilObserver[T any](o types.Observer[T]) bool {
	if o == nil {
		return true
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// sameObserver compares registrations by identity. Observers whose dynamic
// type is not comparable (funcs, maps, slices) never match.
func sameObserver[T any](a, b types.Observer[T]) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// Comparable structs can still hold uncomparable interface values.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
