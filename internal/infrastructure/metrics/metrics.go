package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_quotes_computed_total",
			Help: "Total number of estimates computed",
		},
		[]string{"service_id", "currency", "ready"},
	)

	WizardTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_wizard_transitions_total",
			Help: "Wizard actions by outcome",
		},
		[]string{"action", "outcome"},
	)

	ConsultationsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_consultations_total",
			Help: "Consultation hand-offs by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estimator_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// GinMiddleware observes request duration labelled by the matched route
// template, so path parameters do not explode cardinality.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Outcome is the outcome label for a finished operation: "ok" or "error".
// Wizard actions the state machine refuses are counted as "rejected" instead.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
