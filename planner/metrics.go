package planner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the optional Prometheus instrumentation for a Core. A nil
// *Metrics records nothing, so a Core built without one still runs;
// this mirrors the optional-collaborator style used for PathPublisher.
type Metrics struct {
	cycleDuration       prometheus.Histogram
	legalTrajectories   prometheus.Counter
	illegalTrajectories prometheus.Counter
	stateTransitions    *prometheus.CounterVec
}

// NewMetrics constructs and registers a Metrics against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "localplanner_cycle_duration_seconds",
			Help:    "Duration of one local planner control cycle.",
			Buckets: prometheus.DefBuckets,
		}),
		legalTrajectories: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "localplanner_legal_trajectories_total",
			Help: "Number of cycles whose best trajectory was legal.",
		}),
		illegalTrajectories: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "localplanner_illegal_trajectories_total",
			Help: "Number of cycles where every sampled trajectory was vetoed.",
		}),
		stateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localplanner_state_transitions_total",
			Help: "Number of state machine transitions, labeled by from/to state.",
		}, []string{"from", "to"}),
	}
	reg.MustRegister(m.cycleDuration, m.legalTrajectories, m.illegalTrajectories, m.stateTransitions)
	return m
}

func (m *Metrics) observeCycle(d time.Duration) {
	if m == nil {
		return
	}
	m.cycleDuration.Observe(d.Seconds())
}

func (m *Metrics) recordLegal() {
	if m == nil {
		return
	}
	m.legalTrajectories.Inc()
}

func (m *Metrics) recordIllegal() {
	if m == nil {
		return
	}
	m.illegalTrajectories.Inc()
}

func (m *Metrics) recordTransition(from, to State) {
	if m == nil {
		return
	}
	m.stateTransitions.WithLabelValues(from.String(), to.String()).Inc()
}
