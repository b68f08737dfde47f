package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cleaner_api_requests_total",
		Help: "Total number of Discord API requests issued",
	}, []string{"operation", "status"})

	RateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cleaner_rate_limit_hits_total",
		Help: "Total number of rate-limit responses received from Discord",
	}, []string{"operation"})

	RateLimitWaitSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cleaner_rate_limit_wait_seconds_total",
		Help: "Cumulative seconds spent waiting out Discord rate limits",
	})

	CommandsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cleaner_commands_deleted_total",
		Help: "Total number of slash-command delete attempts",
	}, []string{"status"})
)
