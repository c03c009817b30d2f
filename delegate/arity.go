package delegate

// Delegate0 binds a target of signature func() R.
type Delegate0[R any] struct {
	b binding[func() R]
}

// Func0 binds a free function. Func0(nil) returns an unbound delegate.
func Func0[R any](fn func() R) Delegate0[R] {
	return Delegate0[R]{b: funcBinding(fn)}
}

// Method0 binds a pointer-receiver method expression to recv.
func Method0[C, R any](recv *C, m func(*C) R) Delegate0[R] {
	return Delegate0[R]{b: methodBinding(recv, m, func() R {
		return m(recv)
	})}
}

// ConstMethod0 binds a value-receiver method expression to recv.
func ConstMethod0[C, R any](recv *C, m func(C) R) Delegate0[R] {
	return Delegate0[R]{b: methodBinding(recv, m, func() R {
		return m(*recv)
	})}
}

// Bind rebinds d to a free function. Bind(nil) leaves d unbound.
func (d *Delegate0[R]) Bind(fn func() R) { d.b = funcBinding(fn) }

// Reset unbinds d.
func (d *Delegate0[R]) Reset() { d.b = binding[func() R]{} }

// IsBound reports whether d can be invoked.
func (d Delegate0[R]) IsBound() bool { return d.b.bound }

// Invoke calls the bound target. Panics with ErrUnbound if d is unbound.
func (d Delegate0[R]) Invoke() R {
	if !d.b.bound {
		panic(ErrUnbound)
	}
	return d.b.call()
}

// Equal reports whether d and o share receiver identity and target.
func (d Delegate0[R]) Equal(o Delegate0[R]) bool { return d.b.equal(o.b) }

// Delegate2 binds a target of signature func(A, B) R.
type Delegate2[A, B, R any] struct {
	b binding[func(A, B) R]
}

// Func2 binds a free function. Func2(nil) returns an unbound delegate.
func Func2[A, B, R any](fn func(A, B) R) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{b: funcBinding(fn)}
}

// Method2 binds a pointer-receiver method expression to recv.
func Method2[C, A, B, R any](recv *C, m func(*C, A, B) R) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{b: methodBinding(recv, m, func(a A, b B) R {
		return m(recv, a, b)
	})}
}

// ConstMethod2 binds a value-receiver method expression to recv.
func ConstMethod2[C, A, B, R any](recv *C, m func(C, A, B) R) Delegate2[A, B, R] {
	return Delegate2[A, B, R]{b: methodBinding(recv, m, func(a A, b B) R {
		return m(*recv, a, b)
	})}
}

// Bind rebinds d to a free function. Bind(nil) leaves d unbound.
func (d *Delegate2[A, B, R]) Bind(fn func(A, B) R) { d.b = funcBinding(fn) }

// Reset unbinds d.
func (d *Delegate2[A, B, R]) Reset() { d.b = binding[func(A, B) R]{} }

// IsBound reports whether d can be invoked.
func (d Delegate2[A, B, R]) IsBound() bool { return d.b.bound }

// Invoke calls the bound target with a and b. Panics with ErrUnbound if d is unbound.
func (d Delegate2[A, B, R]) Invoke(a A, b B) R {
	if !d.b.bound {
		panic(ErrUnbound)
	}
	return d.b.call(a, b)
}

// Equal reports whether d and o share receiver identity and target.
func (d Delegate2[A, B, R]) Equal(o Delegate2[A, B, R]) bool { return d.b.equal(o.b) }
