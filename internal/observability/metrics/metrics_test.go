package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestChatMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)
	m.ObserveTurn("book_service", "")
	m.ObserveTurn("affirmative", "save_booking")
	m.ObserveTurnLatency("en", 0.02)
	m.ObserveBookingSaved()
	m.ObserveContactRequestSaved()
}

func TestChatMetricsNilSafe(t *testing.T) {
	var m *ChatMetrics
	m.ObserveTurn("greeting", "none")
	m.ObserveTurnLatency("es", 0.1)
	m.ObserveBookingSaved()
	m.ObserveContactRequestSaved()
}
