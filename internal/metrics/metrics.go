package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelGame   = "game"
	labelResult = "result"
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_rounds_total",
		Help: "Completed rounds by game and result",
	}, []string{labelGame, labelResult})

	payoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_payout_total",
		Help: "Sum of payouts by game",
	}, []string{labelGame})

	liveRounds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "casino_live_rounds",
		Help: "Timed rounds currently running",
	}, []string{labelGame})

	boostActivations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casino_boost_activations_total",
		Help: "Boost activations",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "casino_active_sessions",
		Help: "Sessions held in memory",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{labelMethod, labelRoute, labelStatus})
)

// RoundCompleted records a finished round
func RoundCompleted(game string, won bool, payout int) {
	result := "lost"
	if won {
		result = "won"
	}
	roundsTotal.With(prometheus.Labels{labelGame: game, labelResult: result}).Inc()
	if payout > 0 {
		payoutTotal.With(prometheus.Labels{labelGame: game}).Add(float64(payout))
	}
}

// RoundStarted and RoundStopped track live timed rounds
func RoundStarted(game string) {
	liveRounds.With(prometheus.Labels{labelGame: game}).Inc()
}

func RoundStopped(game string) {
	liveRounds.With(prometheus.Labels{labelGame: game}).Dec()
}

// BoostActivated counts a boost activation
func BoostActivated() {
	boostActivations.Inc()
}

// SessionOpened and SessionClosed track the session registry size
func SessionOpened() {
	activeSessions.Inc()
}

func SessionClosed() {
	activeSessions.Dec()
}

// HTTPRequest counts a served request
func HTTPRequest(method, route, status string) {
	httpRequests.With(prometheus.Labels{labelMethod: method, labelRoute: route, labelStatus: status}).Inc()
}
