package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Simulation outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Collector - метрики Prometheus для расчётов, кеша и HTTP
type Collector struct {
	gatherer prometheus.Gatherer

	Simulations        *prometheus.CounterVec
	SimulationDuration *prometheus.HistogramVec
	CacheRequests      *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// NewCollector регистрирует метрики в reg (по умолчанию глобальный реестр).
// Повторная регистрация возвращает уже существующие коллекторы.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	simulations, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_simulations_total",
		Help: "Coverage computations, labeled by operation and outcome.",
	}, []string{"operation", "outcome"}), "coverage_simulations_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coverage_simulation_duration_seconds",
		Help:    "Coverage computation latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"operation"}), "coverage_simulation_duration_seconds")
	if err != nil {
		return nil, err
	}

	cacheRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_cache_requests_total",
		Help: "Result cache lookups, labeled by operation and result (hit, miss, error).",
	}, []string{"operation", "result"}), "coverage_cache_requests_total")
	if err != nil {
		return nil, err
	}

	httpRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "status"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	httpDuration, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		Simulations:        simulations,
		SimulationDuration: duration,
		CacheRequests:      cacheRequests,
		HTTPRequests:       httpRequests,
		HTTPDuration:       httpDuration,
	}, nil
}

// ObserveSimulation учитывает один расчёт. Безопасен для nil.
func (c *Collector) ObserveSimulation(operation string, err error, elapsed time.Duration) {
	if c == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	c.Simulations.WithLabelValues(operation, outcome).Inc()
	c.SimulationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveCache учитывает обращение к кешу. Безопасен для nil.
func (c *Collector) ObserveCache(operation, result string) {
	if c == nil {
		return
	}
	c.CacheRequests.WithLabelValues(operation, result).Inc()
}

// ObserveHTTP учитывает HTTP запрос. Безопасен для nil.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler отдаёт /metrics
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
