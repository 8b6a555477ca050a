package observability_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverage-planner/internal/observability"
)

func TestCollector_ObserveSimulation(t *testing.T) {
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	collector.ObserveSimulation("simulate", nil, 10*time.Millisecond)
	collector.ObserveSimulation("simulate", errors.New("boom"), time.Millisecond)
	collector.ObserveSimulation("simulate", nil, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.Simulations.WithLabelValues("simulate", observability.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Simulations.WithLabelValues("simulate", observability.OutcomeError)))
}

func TestCollector_ObserveCacheAndHTTP(t *testing.T) {
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	collector.ObserveCache("heatmap", observability.CacheMiss)
	collector.ObserveCache("heatmap", observability.CacheHit)
	collector.ObserveCache("heatmap", observability.CacheHit)
	collector.ObserveHTTP("POST", "/api/v1/simulate", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.CacheRequests.WithLabelValues("heatmap", observability.CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.CacheRequests.WithLabelValues("heatmap", observability.CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("POST", "/api/v1/simulate", "200")))
}

func TestCollector_NilSafe(t *testing.T) {
	var collector *observability.Collector

	assert.NotPanics(t, func() {
		collector.ObserveSimulation("simulate", nil, time.Millisecond)
		collector.ObserveCache("simulate", observability.CacheHit)
		collector.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}

func TestCollector_ReRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := observability.NewCollector(reg)
	require.NoError(t, err)
	second, err := observability.NewCollector(reg)
	require.NoError(t, err)

	first.ObserveCache("simulate", observability.CacheHit)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.CacheRequests.WithLabelValues("simulate", observability.CacheHit)))
}

func TestCollector_Handler(t *testing.T) {
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	collector.ObserveSimulation("link_budget", nil, time.Millisecond)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `coverage_simulations_total{operation="link_budget",outcome="success"} 1`))
}
