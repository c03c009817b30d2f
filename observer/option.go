package observer

import "github.com/codifire/designpatterns/observer/types"

// Channels sets the named channels. Default is Arts, Gadgets.
// Empty names and duplicates are ignored; the catch-all is never a named channel.
func Channels(chs ...types.Channel) types.ServerOption {
	return func(e *types.ServerEntry) {
		e.Channels = append([]types.Channel(nil), chs...)
	}
}

// CatchAll sets the catch-all channel. Default is Anything.
// An empty name keeps the current setting.
func CatchAll(ch types.Channel) types.ServerOption {
	return func(e *types.ServerEntry) {
		if ch != "" {
			e.CatchAll = ch
		}
	}
}

// Policy sets which pushes reach the catch-all channel.
// Default is types.CatchAllAlways.
func Policy(p types.CatchAllPolicy) types.ServerOption {
	return func(e *types.ServerEntry) {
		e.Policy = p
	}
}

// Recorder sets the dispatch metrics recorder (see internal/metrics).
func Recorder(r types.Recorder) types.ServerOption {
	return func(e *types.ServerEntry) {
		e.Recorder = r
	}
}

// RecoverPanics controls whether a panicking listener is recovered, logged
// and skipped (default) or allowed to unwind through Push.
func RecoverPanics(on bool) types.ServerOption {
	return func(e *types.ServerEntry) {
		e.RecoverPanics = on
	}
}
