// Package telemetry exposes the construction engine's live-node counts as
// Prometheus gauges, wired up only when cmd/frontier is started with
// --metrics-addr. Unused by default: the construction engine itself never
// imports this package directly, so a run with no --metrics-addr pays
// nothing for it; with the flag set, each level costs the gauge updates
// Recorder.Observe performs.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder tracks, per level, how many live nodes the construction engine
// is holding, and the widest level seen so far (spec §5's frontier-width
// resource bound made observable).
type Recorder struct {
	liveNodes  *prometheus.GaugeVec
	widestSeen prometheus.Gauge
	widest     int // mirrors widestSeen's value; Prometheus gauges are write-only from here
}

// NewRecorder creates a Recorder registered against its own registry, so
// multiple Recorders (e.g. in tests) never collide on Prometheus's global
// default registry.
func NewRecorder() (*Recorder, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		liveNodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "frontier",
			Name:      "live_nodes",
			Help:      "Live ZDD nodes held at the most recently completed construction level.",
		}, []string{"level"}),
		widestSeen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "frontier",
			Name:      "widest_level_nodes",
			Help:      "The largest per-level live-node count observed so far this run.",
		}),
	}
	reg.MustRegister(r.liveNodes, r.widestSeen)
	return r, reg
}

// Observe records levelWidth live nodes at the given level and updates the
// running widest-level gauge if this level is the new maximum.
func (r *Recorder) Observe(level, levelWidth int) {
	r.liveNodes.WithLabelValues(itoa(level)).Set(float64(levelWidth))
	if levelWidth > r.widest {
		r.widest = levelWidth
		r.widestSeen.Set(float64(levelWidth))
	}
}

// Handler returns an http.Handler serving reg's metrics in the standard
// Prometheus exposition format, suitable for http.ListenAndServe(addr, ...).
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
