package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for appointment and form activity.
type BookingMetrics struct {
	mutationsTotal     *prometheus.CounterVec
	doctorLookupsTotal *prometheus.CounterVec
	sharesTotal        *prometheus.CounterVec
	queryResultSize    prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arzttermin",
			Subsystem: "appointments",
			Name:      "mutations_total",
			Help:      "Appointment create/update/delete attempts",
		}, []string{"operation", "status"}),
		doctorLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arzttermin",
			Subsystem: "form",
			Name:      "doctor_lookups_total",
			Help:      "Doctor list lookups by outcome",
		}, []string{"outcome"}),
		sharesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arzttermin",
			Subsystem: "appointments",
			Name:      "shares_total",
			Help:      "Share link requests by clipboard outcome",
		}, []string{"copied"}),
		queryResultSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arzttermin",
			Subsystem: "appointments",
			Name:      "query_result_size",
			Help:      "Number of appointments matching a list query",
			Buckets:   []float64{0, 1, 6, 12, 24, 48, 96},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.mutationsTotal, m.doctorLookupsTotal, m.sharesTotal, m.queryResultSize)
	return m
}

func (m *BookingMetrics) ObserveMutation(operation string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.mutationsTotal.WithLabelValues(operation, status).Inc()
}

// ObserveDoctorLookup records "loaded", "stale" (superseded by a newer
// selection) or "sync" (editing mode, no delay).
func (m *BookingMetrics) ObserveDoctorLookup(outcome string) {
	if m == nil {
		return
	}
	m.doctorLookupsTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveShare(copied bool) {
	if m == nil {
		return
	}
	label := "false"
	if copied {
		label = "true"
	}
	m.sharesTotal.WithLabelValues(label).Inc()
}

func (m *BookingMetrics) ObserveQueryResult(total int) {
	if m == nil {
		return
	}
	m.queryResultSize.Observe(float64(total))
}
