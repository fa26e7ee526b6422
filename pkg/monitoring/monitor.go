package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	PairingRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peer_pairing_runs_total",
			Help: "Pairing runs by result",
		},
		[]string{"result"},
	)

	PairsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "peer_pairs_created_total",
			Help: "Student pairs written to the partner store",
		},
	)

	UnpairedStudents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "peer_unpaired_students_total",
			Help: "Students left without a partner after a pairing run",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(PairingRuns)
		prometheus.MustRegister(PairsCreated)
		prometheus.MustRegister(UnpairedStudents)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// ObservePairing 记录一次配对运行的结果
func ObservePairing(err error, pairs, unpaired int) {
	if err != nil {
		PairingRuns.WithLabelValues("error").Inc()
		return
	}
	PairingRuns.WithLabelValues("success").Inc()
	PairsCreated.Add(float64(pairs))
	UnpairedStudents.Add(float64(unpaired))
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
