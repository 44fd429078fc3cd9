package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Client Client metrics interface.
//
//go:generate mockgen -destination=./mocks/mock_Client.go -package=mocks github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics Client
type Client interface {
	// Will return a middleware to instrument http routers.
	Instrument(serverLabel string) func(next http.Handler) http.Handler
	// Will return a handler to expose metrics over a http server.
	GetExposeHandler() http.Handler
	// Will return the registerer used by this client (useful for libraries exposing their own collectors).
	GetRegisterer() prometheus.Registerer
	// Will observe the duration of a profiler step.
	ObserveStep(step string, duration time.Duration)
	// Will increase counter of released duration timers.
	IncTimings(level, outcome string)
}

// NewClient will generate a new client instance.
func NewClient() Client {
	client := &prometheusClient{
		registry: prometheus.NewRegistry(),
	}
	// Call register to create all prometheus instances objects
	client.register()

	return client
}
