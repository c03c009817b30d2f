package delegate

// Delegate is a bound reference to a function or method of signature
// func(A) R. The zero value is unbound; assignment rebinds.
type Delegate[A, R any] struct {
	b binding[func(A) R]
}

// Func binds a free function. Func(nil) returns an unbound delegate.
//
// Bindings of closures created by the same function literal compare equal
// regardless of what they capture; bind a method when identity matters.
func Func[A, R any](fn func(A) R) Delegate[A, R] {
	return Delegate[A, R]{b: funcBinding(fn)}
}

// Method binds a pointer-receiver method expression to recv.
//
//	d := delegate.Method(&client, (*Client).Lookup)
//
// recv is borrowed: it must outlive the delegate.
func Method[C, A, R any](recv *C, m func(*C, A) R) Delegate[A, R] {
	return Delegate[A, R]{b: methodBinding(recv, m, func(a A) R {
		return m(recv, a)
	})}
}

// ConstMethod binds a value-receiver method expression to recv. Every call
// sees the receiver's current value and cannot modify it.
//
//	d := delegate.ConstMethod(&client, Client.Name)
func ConstMethod[C, A, R any](recv *C, m func(C, A) R) Delegate[A, R] {
	return Delegate[A, R]{b: methodBinding(recv, m, func(a A) R {
		return m(*recv, a)
	})}
}

// Bind rebinds d to a free function. Bind(nil) leaves d unbound.
func (d *Delegate[A, R]) Bind(fn func(A) R) {
	d.b = funcBinding(fn)
}

// Reset unbinds d.
func (d *Delegate[A, R]) Reset() {
	d.b = binding[func(A) R]{}
}

// IsBound reports whether d can be invoked.
func (d Delegate[A, R]) IsBound() bool {
	return d.b.bound
}

// Invoke calls the bound target with a. Panics with ErrUnbound if d is unbound.
func (d Delegate[A, R]) Invoke(a A) R {
	if !d.b.bound {
		panic(ErrUnbound)
	}
	return d.b.call(a)
}

// Equal reports whether d and o share receiver identity and target.
func (d Delegate[A, R]) Equal(o Delegate[A, R]) bool {
	return d.b.equal(o.b)
}
