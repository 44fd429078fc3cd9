package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusClient struct {
	registry     *prometheus.Registry
	reqCnt       *prometheus.CounterVec
	resSz        *prometheus.SummaryVec
	reqDur       *prometheus.SummaryVec
	reqSz        *prometheus.SummaryVec
	up           *prometheus.GaugeVec
	stepDuration *prometheus.HistogramVec
	timingsTotal *prometheus.CounterVec
}

// Instrument will instrument http routes.
func (cl *prometheusClient) Instrument(serverLabel string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Begin timer
			start := time.Now()
			// Calculate request size
			reqSz := computeApproximateRequestSize(r)

			// Next request with new response writer
			sw := statusWriter{ResponseWriter: w}
			next.ServeHTTP(&sw, r)

			// Get status as string
			status := strconv.Itoa(sw.status)
			// Calculate request time
			elapsed := float64(time.Since(start)) / float64(time.Second)
			// Get response size
			resSz := float64(sw.length)

			// Manage prometheus metrics
			cl.reqDur.WithLabelValues(serverLabel, status, r.Method, r.Host, r.URL.Path).Observe(elapsed)
			cl.reqCnt.WithLabelValues(serverLabel, status, r.Method, r.Host, r.URL.Path).Inc()
			cl.reqSz.WithLabelValues(serverLabel, status, r.Method, r.Host, r.URL.Path).Observe(float64(reqSz))
			cl.resSz.WithLabelValues(serverLabel, status, r.Method, r.Host, r.URL.Path).Observe(resSz)
		})
	}
}

// GetExposeHandler Get handler to expose metrics for resquest.
func (cl *prometheusClient) GetExposeHandler() http.Handler {
	return promhttp.HandlerFor(cl.registry, promhttp.HandlerOpts{Registry: cl.registry})
}

func (cl *prometheusClient) GetRegisterer() prometheus.Registerer {
	return cl.registry
}

func (cl *prometheusClient) ObserveStep(step string, duration time.Duration) {
	cl.stepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

func (cl *prometheusClient) IncTimings(level, outcome string) {
	cl.timingsTotal.WithLabelValues(level, outcome).Inc()
}

func (cl *prometheusClient) register() {
	cl.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cl.reqCnt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "How many HTTP requests have been processed ?",
		},
		[]string{"server", "status_code", "method", "host", "path"},
	)
	cl.registry.MustRegister(cl.reqCnt)

	cl.reqDur = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_request_duration_seconds",
			Help: "The HTTP request latencies in seconds.",
		},
		[]string{"server", "status_code", "method", "host", "path"},
	)
	cl.registry.MustRegister(cl.reqDur)

	cl.reqSz = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_request_size_bytes",
			Help: "The HTTP request sizes in bytes.",
		},
		[]string{"server", "status_code", "method", "host", "path"},
	)
	cl.registry.MustRegister(cl.reqSz)

	cl.resSz = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_response_size_bytes",
			Help: "The HTTP response sizes in bytes.",
		},
		[]string{"server", "status_code", "method", "host", "path"},
	)
	cl.registry.MustRegister(cl.resSz)

	cl.up = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "up",
			Help: "1 = up, 0 = down",
		},
		[]string{"component"},
	)
	cl.up.WithLabelValues("profiling-logger").Set(1)
	cl.registry.MustRegister(cl.up)

	cl.stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "profiler_step_duration_seconds",
			Help:    "The profiler step durations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
	cl.registry.MustRegister(cl.stepDuration)

	cl.timingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duration_timers_total",
			Help: "How many duration timers have been released ?",
		},
		[]string{"level", "outcome"},
	)
	cl.registry.MustRegister(cl.timingsTotal)
}
