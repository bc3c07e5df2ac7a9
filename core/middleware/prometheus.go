package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	bookingAdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_admissions_total",
			Help: "Booking admission outcomes (admitted, conflict, rejected).",
		},
		[]string{"outcome"},
	)
)

// Prometheus records request count and latency per route.
func (m *Middleware) Prometheus() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// Use the route pattern, not the raw path, to keep cardinality down.
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)
			httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// RecordAdmission counts booking admission outcomes for the conflict-rate
// dashboard.
func RecordAdmission(outcome string) {
	bookingAdmissionsTotal.WithLabelValues(outcome).Inc()
}
