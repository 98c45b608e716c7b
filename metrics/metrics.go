//go:build !solution

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "courseplanner"

// Lookup results.
const (
	LookupHit    = "hit"
	LookupMiss   = "miss"
	LookupCached = "cached"
)

// Load results.
const (
	LoadOK          = "ok"
	LoadUnavailable = "unavailable"
	LoadFailed      = "failed"
)

// Metrics groups the catalog collectors. A nil *Metrics records nothing.
type Metrics struct {
	Loads   *prometheus.CounterVec
	Courses prometheus.Gauge
	Lookups *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Source loads by result.",
		}, []string{"result"}),
		Courses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "courses",
			Help:      "Courses held by the catalog.",
		}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Course lookups by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{m.Loads, m.Courses, m.Lookups} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ObserveLoad(result string) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveLookup(result string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(result).Inc()
}

func (m *Metrics) SetCourses(n int) {
	if m == nil {
		return
	}
	m.Courses.Set(float64(n))
}
