package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	Registrations *prometheus.CounterVec
	CheckIns      *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	WriteRetries  prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chapter_events",
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"result"}),
		CheckIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chapter_events",
			Name:      "check_ins_total",
			Help:      "Attendance marks by outcome.",
		}, []string{"result"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chapter_events",
			Name:      "notifications_total",
			Help:      "Notification deliveries by kind and outcome.",
		}, []string{"kind", "result"}),
		WriteRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chapter_events",
			Name:      "event_write_retries_total",
			Help:      "Event writes retried after a version conflict.",
		}),
	}

	reg.MustRegister(m.Registrations, m.CheckIns, m.Notifications, m.WriteRetries)

	return m
}

func (m *Metrics) Registration(result string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(result).Inc()
}

func (m *Metrics) CheckIn(result string) {
	if m == nil {
		return
	}
	m.CheckIns.WithLabelValues(result).Inc()
}

func (m *Metrics) Notification(kind, result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) WriteRetry() {
	if m == nil {
		return
	}
	m.WriteRetries.Inc()
}
