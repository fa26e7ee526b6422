package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePairing(t *testing.T) {
	successBefore := testutil.ToFloat64(PairingRuns.WithLabelValues("success"))
	errorBefore := testutil.ToFloat64(PairingRuns.WithLabelValues("error"))
	pairsBefore := testutil.ToFloat64(PairsCreated)
	unpairedBefore := testutil.ToFloat64(UnpairedStudents)

	ObservePairing(nil, 3, 1)
	ObservePairing(errors.New("boom"), 0, 0)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(PairingRuns.WithLabelValues("success")))
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(PairingRuns.WithLabelValues("error")))
	assert.Equal(t, pairsBefore+3, testutil.ToFloat64(PairsCreated))
	assert.Equal(t, unpairedBefore+1, testutil.ToFloat64(UnpairedStudents))
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	Init()

	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", PrometheusHandler())

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "peer_pairing_runs_total")
}
