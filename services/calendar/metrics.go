package calendar

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters and gauges for calendar aggregation.
type Metrics struct {
	aggregations *prometheus.CounterVec
	diagnostics  prometheus.Counter
	duration     prometheus.Histogram
	occupancy    *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		aggregations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dhara",
			Subsystem: "calendar",
			Name:      "aggregations_total",
			Help:      "Calendar views built, by outcome",
		}, []string{"result"}),
		diagnostics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dhara",
			Subsystem: "calendar",
			Name:      "skipped_records_total",
			Help:      "Slots and appointments skipped as malformed",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dhara",
			Subsystem: "calendar",
			Name:      "view_duration_seconds",
			Help:      "Time to load and aggregate a calendar view",
			Buckets:   prometheus.DefBuckets,
		}),
		occupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dhara",
			Subsystem: "calendar",
			Name:      "occupancy_rate",
			Help:      "Occupancy rate of the current week per professional",
		}, []string{"professional_id"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.aggregations, m.diagnostics, m.duration, m.occupancy)
	return m
}

func (m *Metrics) ObserveAggregation(result string, skipped int, seconds float64) {
	if m == nil {
		return
	}
	m.aggregations.WithLabelValues(result).Inc()
	m.diagnostics.Add(float64(skipped))
	m.duration.Observe(seconds)
}

func (m *Metrics) SetOccupancy(professionalID string, rate float64) {
	if m == nil {
		return
	}
	m.occupancy.WithLabelValues(professionalID).Set(rate)
}
