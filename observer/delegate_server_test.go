package observer_test

import (
	"testing"

	"github.com/codifire/designpatterns/delegate"
	"github.com/codifire/designpatterns/internal/metrics"
	"github.com/codifire/designpatterns/observer"
	"github.com/codifire/designpatterns/observer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegateServer_Demo(t *testing.T) {
	var lines []string
	george := &client{name: "George", log: &lines}
	brad := &client{name: "Brad", log: &lines}
	nicolas := &client{name: "Nicolas", log: &lines}

	s := observer.NewDelegateServer[string]()
	require.NoError(t, s.Subscribe(types.Arts, delegate.ActionMethod(george, (*client).OnNotify)))
	require.NoError(t, s.Subscribe(types.Gadgets, delegate.ActionMethod(brad, (*client).OnNotify)))
	require.NoError(t, s.Subscribe(types.Anything, delegate.ActionMethod(nicolas, (*client).OnNotify)))

	assert.Equal(t, 2, s.Push(types.Arts, "Monalisa"))
	assert.Equal(t, 2, s.Push(types.Gadgets, "iPhoneX"))
	assert.Equal(t, []string{
		"George: Monalisa",
		"Nicolas: Monalisa",
		"Brad: iPhoneX",
		"Nicolas: iPhoneX",
	}, lines)
}

func TestDelegateServer_Unsubscribe(t *testing.T) {
	george := &client{name: "George"}
	s := observer.NewDelegateServer[string]()
	require.NoError(t, s.Subscribe(types.Arts, delegate.ActionMethod(george, (*client).OnNotify)))

	assert.False(t, s.Unsubscribe(types.Gadgets, delegate.ActionMethod(george, (*client).OnNotify)))
	assert.False(t, s.Unsubscribe("Music", delegate.ActionMethod(george, (*client).OnNotify)))
	assert.True(t, s.Unsubscribe(types.Arts, delegate.ActionMethod(george, (*client).OnNotify)))
	assert.Equal(t, 0, s.Count(types.Arts))

	assert.Equal(t, 0, s.Push(types.Arts, "Monalisa"))
	assert.Empty(t, george.got)
}

func TestDelegateServer_Errors(t *testing.T) {
	s := observer.NewDelegateServer[string]()
	assert.ErrorIs(t, s.Subscribe("Music", delegate.ActionFunc(func(string) {})), observer.ErrUnknownChannel)
	assert.ErrorIs(t, s.Subscribe(types.Arts, delegate.Action[string]{}), delegate.ErrUnbound)
}

func TestDelegateServer_FreeFunctionsAndPolicy(t *testing.T) {
	var got []int
	s := observer.NewDelegateServer[int](observer.Policy(types.CatchAllUnmatched))
	require.NoError(t, s.Subscribe(types.Gadgets, delegate.ActionFunc(func(n int) { got = append(got, n) })))
	require.NoError(t, s.Subscribe(types.Anything, delegate.ActionFunc(func(n int) { got = append(got, -n) })))

	s.Push(types.Gadgets, 1)
	s.Push("Music", 2)
	assert.Equal(t, []int{1, -2}, got)

	s.Reset()
	assert.Equal(t, 0, s.Push(types.Gadgets, 3))
}

func TestDelegateServer_RecoversPanics(t *testing.T) {
	prom := metrics.NewProm()
	after := &client{name: "after"}
	s := observer.NewDelegateServer[string](observer.Recorder(prom))
	require.NoError(t, s.Subscribe(types.Anything, delegate.ActionFunc(func(string) { panic("boom") })))
	require.NoError(t, s.Subscribe(types.Anything, delegate.ActionMethod(after, (*client).OnNotify)))

	assert.Equal(t, 2, s.Push(types.Arts, "x"))
	assert.Equal(t, []string{"x"}, after.got)

	snap, err := prom.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1.0, snap[`observer_recovered_panics_total{channel="Anything"}`])
}
