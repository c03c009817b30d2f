package scenario

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/codifire/designpatterns/delegate"
	"github.com/codifire/designpatterns/internal/logger"
	"github.com/codifire/designpatterns/observer"
	"github.com/codifire/designpatterns/observer/types"
)

var log = logger.New("scenario")

// Runner replays scenarios.
type Runner struct {
	Mode     string                       // Overrides the scenario mode when set
	Policy   string                       // Overrides the scenario policy when set
	Recorder types.Recorder               // Optional dispatch metrics
	OnLine   func(client, message string) // Called for every client line as it happens
}

// hub is the part of Server and DelegateServer a scenario drives.
type hub interface {
	add(ch types.Channel, c *Client) error
	remove(ch types.Channel, c *Client) bool
	push(ch types.Channel, message string) int
}

type observerHub struct{ s *observer.Server[string] }

func (h observerHub) add(ch types.Channel, c *Client) error { return h.s.Register(ch, c) }
func (h observerHub) remove(ch types.Channel, c *Client) bool { return h.s.Unregister(ch, c) }
func (h observerHub) push(ch types.Channel, msg string) int { return h.s.Push(ch, msg) }

type delegateHub struct{ s *observer.DelegateServer[string] }

func (h delegateHub) add(ch types.Channel, c *Client) error {
	return h.s.Subscribe(ch, delegate.ActionMethod(c, (*Client).Notification))
}

func (h delegateHub) remove(ch types.Channel, c *Client) bool {
	return h.s.Unsubscribe(ch, delegate.ActionMethod(c, (*Client).Notification))
}

func (h delegateHub) push(ch types.Channel, msg string) int { return h.s.Push(ch, msg) }

// Run replays sc and returns its transcript. Registration failures abort the
// run; the partial transcript is returned with the error.
func (r Runner) Run(sc *Scenario) (*Transcript, error) {
	run := *sc
	if r.Mode != "" {
		run.Mode = r.Mode
	}
	if r.Policy != "" {
		run.Policy = r.Policy
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}

	opts, err := run.Options()
	if err != nil {
		return nil, err
	}
	if r.Recorder != nil {
		opts = append(opts, observer.Recorder(r.Recorder))
	}

	var h hub
	switch run.Mode {
	case ModeDelegate:
		h = delegateHub{observer.NewDelegateServer[string](opts...)}
	default:
		h = observerHub{observer.NewServer[string](opts...)}
	}

	t := &Transcript{
		ID:       uuid.NewString(),
		Name:     run.Name,
		Mode:     run.Mode,
		Policy:   run.Policy,
		Channels: append(append([]types.Channel(nil), run.Channels...), run.CatchAll),
		Entries:  []Entry{},
	}

	var current *Entry
	emit := func(name, message string) {
		if current != nil {
			current.Lines = append(current.Lines, Line{Client: name, Message: message})
		}
		if r.OnLine != nil {
			r.OnLine(name, message)
		}
	}

	clients := make(map[string]*Client, len(run.Clients))
	for _, cs := range run.Clients {
		c := NewClient(cs.Name, emit)
		clients[cs.Name] = c
		for _, ch := range cs.Channels {
			if err := h.add(ch, c); err != nil {
				return t, fmt.Errorf("scenario: register %s on %s: %w", c.Name, ch, err)
			}
		}
	}

	log.Debug("run %s (%s): mode=%s policy=%s clients=%d steps=%d", run.Name, t.ID, run.Mode, run.Policy, len(clients), len(run.Steps))

	for i, st := range run.Steps {
		t.Entries = append(t.Entries, Entry{Step: i, Action: st.Action, Channel: st.Channel, Client: st.Client})
		current = &t.Entries[len(t.Entries)-1]

		switch st.Action {
		case ActionPush:
			text, err := st.Text()
			if err != nil {
				return t, fmt.Errorf("scenario: steps[%d]: %w", i, err)
			}
			current.Message = text
			current.Delivered = h.push(st.Channel, text)
		case ActionRegister:
			if err := h.add(st.Channel, clients[st.Client]); err != nil {
				return t, fmt.Errorf("scenario: steps[%d]: register %s on %s: %w", i, st.Client, st.Channel, err)
			}
		case ActionRemove:
			current.Removed = h.remove(st.Channel, clients[st.Client])
			if !current.Removed {
				log.Warn("steps[%d]: %s is not registered on %s", i, st.Client, st.Channel)
			}
		}
	}
	return t, nil
}
