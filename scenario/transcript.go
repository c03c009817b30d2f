package scenario

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/codifire/designpatterns/observer/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Transcript records what a run did.
type Transcript struct {
	ID       string          `json:"id"` // Run ID, a random UUID
	Name     string          `json:"name"`
	Mode     string          `json:"mode"`
	Policy   string          `json:"policy"`
	Channels []types.Channel `json:"channels"`
	Entries  []Entry         `json:"entries"`
}

// Entry is the outcome of one step.
type Entry struct {
	Step      int           `json:"step"`
	Action    string        `json:"action"`
	Channel   types.Channel `json:"channel"`
	Client    string        `json:"client,omitempty"`
	Message   string        `json:"message,omitempty"`
	Delivered int           `json:"delivered"`
	Removed   bool          `json:"removed,omitempty"`
	Lines     []Line        `json:"lines,omitempty"`
}

// Line is one client output line.
type Line struct {
	Client  string `json:"client"`
	Message string `json:"message"`
}

func (l Line) String() string {
	return l.Client + ": " + l.Message
}

// Lines returns every client line of the run in order, formatted "Name: message".
func (t *Transcript) Lines() []string {
	var out []string
	for _, e := range t.Entries {
		for _, l := range e.Lines {
			out = append(out, l.String())
		}
	}
	return out
}

// Deliveries returns the total number of listener calls.
func (t *Transcript) Deliveries() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Delivered
	}
	return total
}

// JSON returns the indented JSON form of the transcript.
func (t *Transcript) JSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
