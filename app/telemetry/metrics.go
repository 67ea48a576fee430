package telemetry

import (
	"github.com/bvisness/portwire/app/core"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Commits       prometheus.Counter
	Aborts        *prometheus.CounterVec
	Drags         prometheus.Counter
	ResolveErrors prometheus.Counter
}

// NewMetrics creates the gesture counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portwire_connections_committed_total",
			Help: "Connections created by completed gestures.",
		}),
		Aborts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portwire_connection_aborts_total",
			Help: "Connection gestures that ended without a connection, by reason.",
		}, []string{"reason"}),
		Drags: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portwire_node_drags_total",
			Help: "Node drag gestures started.",
		}),
		ResolveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portwire_resolve_errors_total",
			Help: "Connections that could not be resolved to coordinates when drawing.",
		}),
	}
	reg.MustRegister(m.Commits, m.Aborts, m.Drags, m.ResolveErrors)
	return m
}

func (m *Metrics) Hooks() core.Hooks {
	return core.Hooks{
		OnConnectionCommit: func(*core.GestureEvent) { m.Commits.Inc() },
		OnConnectionAbort: func(e *core.GestureEvent) {
			m.Aborts.WithLabelValues(string(e.Reason)).Inc()
		},
		OnDragStart:    func(*core.GestureEvent) { m.Drags.Inc() },
		OnResolveError: func(core.Connection, error) { m.ResolveErrors.Inc() },
	}
}
