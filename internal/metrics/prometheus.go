package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codifire/designpatterns/observer/types"
)

// Prom records hub dispatch counters on a private registry.
type Prom struct {
	reg *prometheus.Registry

	pushes     *prometheus.CounterVec
	deliveries *prometheus.CounterVec
	recovered  *prometheus.CounterVec
}

func NewProm() *Prom {
	reg := prometheus.NewRegistry()
	p := &Prom{
		reg: reg,
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "observer_pushes_total", Help: "Pushes per channel",
		}, []string{"channel"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "observer_deliveries_total", Help: "Listener calls per channel",
		}, []string{"channel"}),
		recovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "observer_recovered_panics_total", Help: "Listener panics recovered per channel",
		}, []string{"channel"}),
	}
	reg.MustRegister(p.pushes, p.deliveries, p.recovered)
	return p
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (p *Prom) Registry() *prometheus.Registry { return p.reg }

func (p *Prom) Published(channel types.Channel) {
	p.pushes.WithLabelValues(string(channel)).Inc()
}

func (p *Prom) Delivered(channel types.Channel, n int) {
	if n <= 0 {
		return
	}
	p.deliveries.WithLabelValues(string(channel)).Add(float64(n))
}

func (p *Prom) Recovered(channel types.Channel) {
	p.recovered.WithLabelValues(string(channel)).Inc()
}

// Snapshot returns every counter keyed as name{channel="X"}.
func (p *Prom) Snapshot() (map[string]float64, error) {
	families, err := p.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			channel := ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "channel" {
					channel = lp.GetValue()
				}
			}
			out[fmt.Sprintf("%s{channel=%q}", mf.GetName(), channel)] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}

// WriteTo writes the snapshot as sorted "key value" lines.
func (p *Prom) WriteTo(w io.Writer) (int64, error) {
	snap, err := p.Snapshot()
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total int64
	for _, k := range keys {
		n, err := fmt.Fprintf(w, "%s %g\n", k, snap[k])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
