package metrics

import "github.com/codifire/designpatterns/observer/types"

// Noop is the default Recorder; it discards every measurement.
type Noop struct{}

func (Noop) Published(types.Channel)      {}
func (Noop) Delivered(types.Channel, int) {}
func (Noop) Recovered(types.Channel)      {}

var (
	_ types.Recorder = Noop{}
	_ types.Recorder = (*Prom)(nil)
)
