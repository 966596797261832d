package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for conversation flows.
type ChatMetrics struct {
	turnsTotal           *prometheus.CounterVec
	turnLatency          *prometheus.HistogramVec
	bookingsSaved        prometheus.Counter
	contactRequestsSaved prometheus.Counter
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "concierge",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total processed conversation turns",
		}, []string{"intent", "action"}),
		turnLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "concierge",
			Subsystem: "chat",
			Name:      "turn_latency_seconds",
			Help:      "Latency of conversation turn processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"lang"}),
		bookingsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "concierge",
			Subsystem: "chat",
			Name:      "bookings_saved_total",
			Help:      "Total bookings persisted from completed conversations",
		}),
		contactRequestsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "concierge",
			Subsystem: "chat",
			Name:      "contact_requests_saved_total",
			Help:      "Total callback requests persisted",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.turnLatency, m.bookingsSaved, m.contactRequestsSaved)
	return m
}

func (m *ChatMetrics) ObserveTurn(intent, action string) {
	if m == nil {
		return
	}
	if action == "" {
		action = "none"
	}
	m.turnsTotal.WithLabelValues(intent, action).Inc()
}

func (m *ChatMetrics) ObserveTurnLatency(lang string, seconds float64) {
	if m == nil {
		return
	}
	m.turnLatency.WithLabelValues(lang).Observe(seconds)
}

func (m *ChatMetrics) ObserveBookingSaved() {
	if m == nil {
		return
	}
	m.bookingsSaved.Inc()
}

func (m *ChatMetrics) ObserveContactRequestSaved() {
	if m == nil {
		return
	}
	m.contactRequestsSaved.Inc()
}
