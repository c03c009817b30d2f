package types

import (
	"fmt"
	"strings"
)

// Channel is a named notification category, e.g. "Arts" or "Gadgets".
type Channel string

// Default channels.
const (
	Arts     Channel = "Arts"
	Gadgets  Channel = "Gadgets"
	Anything Channel = "Anything" // catch-all
)

// CatchAllPolicy decides which pushes also reach the catch-all channel.
type CatchAllPolicy int

const (
	// CatchAllAlways delivers every push to the catch-all channel after the
	// named channel, even when the named channel has no listeners.
	CatchAllAlways CatchAllPolicy = iota

	// CatchAllUnmatched delivers to the catch-all channel only when the push
	// has no dedicated channel: it targets the catch-all itself or an
	// unknown channel.
	CatchAllUnmatched
)

func (p CatchAllPolicy) String() string {
	switch p {
	case CatchAllAlways:
		return "always"
	case CatchAllUnmatched:
		return "unmatched"
	default:
		return fmt.Sprintf("CatchAllPolicy(%d)", int(p))
	}
}

// ParsePolicy parses "always" or "unmatched" (case-insensitive).
// An empty string yields the default policy.
func ParsePolicy(s string) (CatchAllPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "always":
		return CatchAllAlways, nil
	case "unmatched":
		return CatchAllUnmatched, nil
	default:
		return CatchAllAlways, fmt.Errorf("types.ParsePolicy: unknown catch-all policy %q", s)
	}
}

// ServerOption configures a Server or DelegateServer.
type ServerOption func(*ServerEntry)

// ServerEntry is the construction record for a hub.
type ServerEntry struct {
	Channels      []Channel      // Named channels, default Arts, Gadgets
	CatchAll      Channel        // Catch-all channel, default Anything
	Policy        CatchAllPolicy // Default CatchAllAlways
	Recorder      Recorder       // Dispatch metrics; nil means no-op
	RecoverPanics bool           // Recover listener panics and continue fan-out, default true
}

// DefaultChannels returns a fresh copy of the default named channels.
func DefaultChannels() []Channel {
	return []Channel{Arts, Gadgets}
}

// NewServerEntry returns a ServerEntry with defaults applied, then opts.
func NewServerEntry(opts ...ServerOption) *ServerEntry {
	entry := &ServerEntry{
		Channels:      DefaultChannels(),
		CatchAll:      Anything,
		Policy:        CatchAllAlways,
		RecoverPanics: true,
	}
	for _, opt := range opts {
		opt(entry)
	}
	return entry
}
