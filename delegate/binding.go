// Package delegate binds free functions and methods behind fixed-signature
// call values that can be compared and invoked later.
package delegate

import (
	"errors"
	"reflect"
)

// Sentinel errors. They are raised as panic values: invoking an unbound
// delegate or binding a method to nothing is a programmer error.
var (
	ErrUnbound     = errors.New("delegate: cannot invoke unbound delegate, bind it first")
	ErrNilReceiver = errors.New("delegate: cannot bind method to nil receiver")
	ErrNilMethod   = errors.New("delegate: cannot bind nil method expression")
	ErrZeroSize    = errors.New("delegate: cannot bind method to zero-size receiver, bind a function instead")
)

// binding is the type-erased core shared by every delegate shape.
//
//   - recv:  receiver pointer, nil for free functions. Not owned.
//   - thunk: code pointer of the bound function or method expression.
//   - call:  dispatcher selected once at bind time.
type binding[F any] struct {
	recv  any
	thunk uintptr
	call  F
	bound bool
}

// equal reports same receiver identity and same thunk. Two unbound
// bindings are equal.
func (b binding[F]) equal(o binding[F]) bool {
	return b.bound == o.bound && b.recv == o.recv && b.thunk == o.thunk
}

// funcBinding binds a free function. A nil fn yields an unbound binding.
func funcBinding[F any](fn F) binding[F] {
	pc, ok := thunkOf(fn)
	if !ok {
		return binding[F]{}
	}
	return binding[F]{thunk: pc, call: fn, bound: true}
}

// methodBinding binds call, a closure over recv and the method expression m.
// Identity is taken from recv and m, never from the closure.
//
// Distinct zero-size values may share an address, so their pointers carry no
// identity; such receivers are rejected.
func methodBinding[F, C any](recv *C, m any, call F) binding[F] {
	if recv == nil {
		panic(ErrNilReceiver)
	}
	if reflect.TypeFor[C]().Size() == 0 {
		panic(ErrZeroSize)
	}
	pc, ok := thunkOf(m)
	if !ok {
		panic(ErrNilMethod)
	}
	return binding[F]{recv: recv, thunk: pc, call: call, bound: true}
}

// thunkOf returns the code pointer of fn. Closures created from the same
// function literal share a code pointer.
func thunkOf(fn any) (uintptr, bool) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return 0, false
	}
	return rv.Pointer(), true
}
