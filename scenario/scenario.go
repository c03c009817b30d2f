// Package scenario replays scripted notification sessions against an
// observer hub: clients subscribe to channels, then a list of steps pushes
// messages and adds or removes registrations. Scenarios are YAML documents.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/codifire/designpatterns/observer"
	"github.com/codifire/designpatterns/observer/types"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Modes
const (
	ModeObserver = "observer" // Server with polymorphic observers
	ModeDelegate = "delegate" // DelegateServer with method bindings
)

// Step actions
const (
	ActionPush     = "push"
	ActionRegister = "register"
	ActionRemove   = "remove"
)

// Scenario is a scripted session.
type Scenario struct {
	Name     string          `yaml:"name" json:"name"`
	Mode     string          `yaml:"mode" json:"mode"`
	Policy   string          `yaml:"policy" json:"policy"`
	Channels []types.Channel `yaml:"channels" json:"channels"`
	CatchAll types.Channel   `yaml:"catch_all" json:"catch_all"`
	Clients  []ClientSpec    `yaml:"clients" json:"clients"`
	Steps    []Step          `yaml:"steps" json:"steps"`
}

// ClientSpec declares a client and the channels it registers on at start.
type ClientSpec struct {
	Name     string          `yaml:"name" json:"name"`
	Channels []types.Channel `yaml:"channels" json:"channels"`
}

// Step is one scripted action. Push needs Channel and Message; register and
// remove need Channel and Client.
type Step struct {
	Action  string        `yaml:"action" json:"action"`
	Channel types.Channel `yaml:"channel" json:"channel"`
	Client  string        `yaml:"client,omitempty" json:"client,omitempty"`
	Message interface{}   `yaml:"message,omitempty" json:"message,omitempty"`
}

// Text returns the step message as text. Any YAML scalar is accepted.
func (s Step) Text() (string, error) {
	if s.Message == nil {
		return "", nil
	}
	text, err := cast.ToStringE(s.Message)
	if err != nil {
		return "", fmt.Errorf("message %v: %w", s.Message, err)
	}
	return text, nil
}

// Default returns the built-in demonstration: George on Arts, Brad on
// Gadgets, Nicolas on Anything; push Arts "Monalisa" then Gadgets "iPhoneX".
func Default() *Scenario {
	sc, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return sc
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario, applies defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	if sc.Mode == "" {
		sc.Mode = ModeObserver
	}
	if sc.Policy == "" {
		sc.Policy = types.CatchAllAlways.String()
	}
	if len(sc.Channels) == 0 {
		sc.Channels = types.DefaultChannels()
	}
	if sc.CatchAll == "" {
		sc.CatchAll = types.Anything
	}
	for i := range sc.Steps {
		sc.Steps[i].Action = strings.ToLower(sc.Steps[i].Action)
	}
}

// Options returns the hub options the scenario describes.
func (sc *Scenario) Options() ([]types.ServerOption, error) {
	policy, err := types.ParsePolicy(sc.Policy)
	if err != nil {
		return nil, err
	}
	return []types.ServerOption{
		observer.Channels(sc.Channels...),
		observer.CatchAll(sc.CatchAll),
		observer.Policy(policy),
	}, nil
}

// Validate reports every problem in sc at once.
func (sc *Scenario) Validate() error {
	var result *multierror.Error

	switch sc.Mode {
	case ModeObserver, ModeDelegate:
	default:
		result = multierror.Append(result, fmt.Errorf("mode %q must be %s or %s", sc.Mode, ModeObserver, ModeDelegate))
	}
	if _, err := types.ParsePolicy(sc.Policy); err != nil {
		result = multierror.Append(result, err)
	}

	known := map[types.Channel]bool{sc.CatchAll: true}
	for _, ch := range sc.Channels {
		if ch == "" {
			result = multierror.Append(result, errors.New("channels: empty channel name"))
			continue
		}
		known[ch] = true
	}

	clients := map[string]bool{}
	for i, c := range sc.Clients {
		if c.Name == "" {
			result = multierror.Append(result, fmt.Errorf("clients[%d]: missing name", i))
			continue
		}
		if clients[c.Name] {
			result = multierror.Append(result, fmt.Errorf("clients[%d]: duplicate client %q", i, c.Name))
		}
		clients[c.Name] = true
		for _, ch := range c.Channels {
			if !known[ch] {
				result = multierror.Append(result, fmt.Errorf("clients[%d]: unknown channel %q", i, ch))
			}
		}
	}

	for i, st := range sc.Steps {
		switch st.Action {
		case ActionPush:
			if st.Channel == "" {
				result = multierror.Append(result, fmt.Errorf("steps[%d]: push without channel", i))
			}
			if _, err := st.Text(); err != nil {
				result = multierror.Append(result, fmt.Errorf("steps[%d]: %w", i, err))
			}
		case ActionRegister, ActionRemove:
			if !known[st.Channel] {
				result = multierror.Append(result, fmt.Errorf("steps[%d]: unknown channel %q", i, st.Channel))
			}
			if !clients[st.Client] {
				result = multierror.Append(result, fmt.Errorf("steps[%d]: unknown client %q", i, st.Client))
			}
		default:
			result = multierror.Append(result, fmt.Errorf("steps[%d]: unknown action %q", i, st.Action))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidScenario, sc.Name, err)
	}
	return nil
}
