package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total successful logins",
		},
	)

	QuotesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Total quotes created",
		},
	)

	LikeTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_toggles_total",
			Help: "Total like toggles by resulting state",
		},
		[]string{"action"}, // like|unlike
	)

	SessionsSweptTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_swept_total",
			Help: "Total expired sessions removed by the sweeper",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(QuotesCreatedTotal)
	prometheus.MustRegister(LikeTogglesTotal)
	prometheus.MustRegister(SessionsSweptTotal)
}
