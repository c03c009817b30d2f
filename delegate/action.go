package delegate

// Action is a Delegate whose target returns nothing: func(A). Subscription
// lists hold Actions.
type Action[A any] struct {
	b binding[func(A)]
}

// ActionFunc binds a free function. ActionFunc(nil) returns an unbound action.
func ActionFunc[A any](fn func(A)) Action[A] {
	return Action[A]{b: funcBinding(fn)}
}

// ActionMethod binds a pointer-receiver method expression to recv.
func ActionMethod[C, A any](recv *C, m func(*C, A)) Action[A] {
	return Action[A]{b: methodBinding(recv, m, func(a A) {
		m(recv, a)
	})}
}

// ActionConstMethod binds a value-receiver method expression to recv.
func ActionConstMethod[C, A any](recv *C, m func(C, A)) Action[A] {
	return Action[A]{b: methodBinding(recv, m, func(a A) {
		m(*recv, a)
	})}
}

// Bind rebinds a to a free function. Bind(nil) leaves a unbound.
func (a *Action[A]) Bind(fn func(A)) {
	a.b = funcBinding(fn)
}

// Reset unbinds a.
func (a *Action[A]) Reset() {
	a.b = binding[func(A)]{}
}

// IsBound reports whether a can be invoked.
func (a Action[A]) IsBound() bool {
	return a.b.bound
}

// Invoke calls the bound target. Panics with ErrUnbound if a is unbound.
func (a Action[A]) Invoke(arg A) {
	if !a.b.bound {
		panic(ErrUnbound)
	}
	a.b.call(arg)
}

// Equal reports whether a and o share receiver identity and target.
func (a Action[A]) Equal(o Action[A]) bool {
	return a.b.equal(o.b)
}
