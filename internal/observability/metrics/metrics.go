package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the lead intake flow.
// All observe methods are safe on a nil receiver so callers can skip wiring
// metrics entirely.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	appendLatency    prometheus.Histogram
}

// NewLeadMetrics registers the lead intake collectors with reg, or the
// default registerer when reg is nil.
func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		appendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "studio",
			Subsystem: "leads",
			Name:      "sheet_append_latency_seconds",
			Help:      "Latency of sheet append calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.appendLatency)
	return m
}

// ObserveSubmission counts one submission with the given outcome
// (accepted, rejected, sink_error, misconfigured).
func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveAppendLatency records one sheet append duration.
func (m *LeadMetrics) ObserveAppendLatency(seconds float64) {
	if m == nil {
		return
	}
	m.appendLatency.Observe(seconds)
}
