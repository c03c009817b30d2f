package observer

import (
	"github.com/codifire/designpatterns/internal/logger"
	"github.com/codifire/designpatterns/internal/metrics"
	"github.com/codifire/designpatterns/observer/types"
)

// notifier is a per-channel registration list: *Subject or *Subscription.
type notifier[T any] interface {
	Notify(payload T) int
	Len() int
	Clear()
	SetPanicHandler(fn func(recovered any))
}

// router maps channels to lists and implements the push protocol shared by
// Server and DelegateServer. The channel table is fixed at construction;
// each list carries its own lock.
type router[T any, N notifier[T]] struct {
	entry    *types.ServerEntry
	recorder types.Recorder
	log      *logger.Logger
	order    []types.Channel
	named    map[types.Channel]N
	catchAll N
}

func newRouter[T any, N notifier[T]](newList func() N, tag string, opts ...types.ServerOption) *router[T, N] {
	entry := types.NewServerEntry(opts...)

	r := &router[T, N]{
		entry:    entry,
		recorder: entry.Recorder,
		log:      logger.New(tag),
		named:    make(map[types.Channel]N, len(entry.Channels)),
	}
	if r.recorder == nil {
		r.recorder = metrics.Noop{}
	}

	for _, ch := range entry.Channels {
		if ch == "" || ch == entry.CatchAll {
			continue
		}
		if _, dup := r.named[ch]; dup {
			continue
		}
		list := newList()
		list.SetPanicHandler(r.panicHandler(ch))
		r.named[ch] = list
		r.order = append(r.order, ch)
	}

	r.catchAll = newList()
	r.catchAll.SetPanicHandler(r.panicHandler(entry.CatchAll))
	r.order = append(r.order, entry.CatchAll)
	return r
}

// list returns the registration list for ch, the catch-all included.
func (r *router[T, N]) list(ch types.Channel) (N, bool) {
	if ch == r.entry.CatchAll {
		return r.catchAll, true
	}
	list, ok := r.named[ch]
	return list, ok
}

// push fans payload out to ch and then, per policy, to the catch-all.
// Returns the total number of listener calls.
func (r *router[T, N]) push(ch types.Channel, payload T) int {
	r.recorder.Published(ch)

	total := 0
	list, named := r.named[ch]
	if named {
		n := list.Notify(payload)
		r.recorder.Delivered(ch, n)
		total += n
	} else if ch != r.entry.CatchAll {
		r.log.Trace("push to unknown channel %s", ch)
	}

	if r.reachesCatchAll(ch, named) {
		n := r.catchAll.Notify(payload)
		r.recorder.Delivered(r.entry.CatchAll, n)
		total += n
	}
	return total
}

func (r *router[T, N]) reachesCatchAll(ch types.Channel, named bool) bool {
	if ch == r.entry.CatchAll {
		return true
	}
	if r.entry.Policy == types.CatchAllUnmatched {
		return !named
	}
	return true
}

func (r *router[T, N]) panicHandler(ch types.Channel) func(any) {
	if !r.entry.RecoverPanics {
		return nil
	}
	return func(recovered any) {
		r.log.Error("listener panic: channel=%s err=%v", ch, recovered)
		r.recorder.Recovered(ch)
	}
}

// Count returns the number of registrations on ch; 0 for unknown channels.
func (r *router[T, N]) Count(ch types.Channel) int {
	list, ok := r.list(ch)
	if !ok {
		return 0
	}
	return list.Len()
}

// Channels returns the named channels in configuration order, followed by the catch-all.
func (r *router[T, N]) Channels() []types.Channel {
	out := make([]types.Channel, len(r.order))
	copy(out, r.order)
	return out
}

// CatchAll returns the catch-all channel.
func (r *router[T, N]) CatchAll() types.Channel {
	return r.entry.CatchAll
}

// Policy returns the catch-all policy.
func (r *router[T, N]) Policy() types.CatchAllPolicy {
	return r.entry.Policy
}

// Reset removes every registration on every channel.
func (r *router[T, N]) Reset() {
	for _, list := range r.named {
		list.Clear()
	}
	r.catchAll.Clear()
}
