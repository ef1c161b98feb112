package metrics

import (
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	inboundMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadbot_inbound_messages_total",
			Help: "Inbound WhatsApp messages by kind (text/button_reply/ignored).",
		},
		[]string{"kind"},
	)

	sessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadbot_session_transitions_total",
			Help: "Session mutations by action and resulting stage.",
		},
		[]string{"action", "stage"},
	)

	outboundCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadbot_outbound_calls_total",
			Help: "WhatsApp Cloud API calls by kind and result.",
		},
		[]string{"kind", "result"},
	)

	leadsPersisted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadbot_leads_persisted_total",
			Help: "Lead append attempts by result.",
		},
		[]string{"result"},
	)

	droppedProductCards = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadbot_dropped_product_cards_total",
			Help: "Product cards not sent because the product has no image.",
		},
		[]string{"product"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "leadbot_active_sessions",
			Help: "Conversations currently held by the in-memory session store.",
		},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			inboundMessages, sessionTransitions, outboundCalls,
			leadsPersisted, droppedProductCards, activeSessions,
		)
	})
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// -------- Conversation helpers --------

func IncInbound(kind string) {
	inboundMessages.WithLabelValues(norm(kind)).Inc()
}

func IncTransition(action, stage string) {
	stage = norm(stage)
	if stage == "" {
		stage = "none"
	}
	sessionTransitions.WithLabelValues(norm(action), stage).Inc()
}

func SetActiveSessions(n int64) {
	activeSessions.Set(float64(n))
}

// -------- Outbound helpers --------

func ObserveOutbound(kind string, success bool) {
	outboundCalls.WithLabelValues(norm(kind), result(success)).Inc()
}

func IncDroppedProductCard(product string) {
	droppedProductCards.WithLabelValues(product).Inc()
}

// -------- Persistence helpers --------

func ObserveLeadPersisted(success bool) {
	leadsPersisted.WithLabelValues(result(success)).Inc()
}
