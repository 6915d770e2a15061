package http

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gabapcia/nodewatch/internal/peertrack"
	"github.com/gabapcia/nodewatch/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// newMetrics registers the HTTP and peer metrics on reg. The unique peer
// gauge reads the tracker at scrape time.
func newMetrics(reg prometheus.Registerer, peers peertrack.Service) *metrics {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distributions.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		),
	}

	uniquePeers := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "nodewatch_peers_unique",
			Help: "Unique peer IDs seen since startup.",
		},
		func() float64 {
			snapshot, err := peers.Snapshot(context.Background())
			if err != nil {
				logger.Warn(context.Background(), "failed to read peers for metrics", "error", err)
				return math.NaN()
			}
			return float64(snapshot.Total)
		},
	)

	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		uniquePeers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// middleware records every matched route. Unmatched paths are skipped to keep
// label cardinality bounded.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		if path == "" {
			return
		}

		status := strconv.Itoa(c.Writer.Status())
		m.requestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
