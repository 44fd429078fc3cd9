// Package server provides the internal HTTP server exposing metrics and health.
package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"emperror.dev/errors"
	"github.com/dimiro1/health"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httptracer"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/tracing"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/version"
)

const (
	reporting         = "github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/server.InternalServer"
	readHeaderTimeout = 10 * time.Second
)

// InternalServer serves /metrics and /health.
type InternalServer struct {
	logger     log.ConfigurableLogger
	cfgManager config.Manager
	metricsCl  metrics.Client
	tracingSvc tracing.Service
	server     *http.Server
}

func NewInternalServer(
	logger log.ConfigurableLogger,
	cfgManager config.Manager,
	metricsCl metrics.Client,
	tracingSvc tracing.Service,
) *InternalServer {
	return &InternalServer{
		logger:     logger,
		cfgManager: cfgManager,
		metricsCl:  metricsCl,
		tracingSvc: tracingSvc,
	}
}

// Listen serves until Shutdown is called. A server closed by Shutdown returns no error.
func (svr *InternalServer) Listen() error {
	if svr.server == nil {
		return errors.New("internal server not generated")
	}

	svr.logger.InfoTemplate(reporting, "Internal server listening on {Address}", svr.server.Addr)

	err := svr.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

// Shutdown gracefully stops the server.
func (svr *InternalServer) Shutdown(ctx context.Context) error {
	if svr.server == nil {
		return nil
	}

	svr.logger.Info(reporting, "Internal server shutting down")

	return errors.WithStack(svr.server.Shutdown(ctx))
}

// GenerateServer builds the http server from configuration.
func (svr *InternalServer) GenerateServer() {
	// Get configuration
	cfg := svr.cfgManager.GetConfig()
	// Generate internal router
	r := svr.generateInternalRouter()
	// Create server
	addr := net.JoinHostPort(cfg.InternalServer.ListenAddr, strconv.Itoa(cfg.InternalServer.Port))
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	// Store server
	svr.server = server
}

func (svr *InternalServer) generateInternalRouter() http.Handler {
	r := chi.NewRouter()

	// Get configuration
	cfg := svr.cfgManager.GetConfig()

	r.Use(middleware.NoCache)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Tracing is only added when a tracing service exists.
	// The reloadable tracer follows tracing reloads.
	if svr.tracingSvc != nil {
		var tags map[string]interface{}
		if cfg.Tracing != nil {
			tags = cfg.Tracing.FixedTags
		}

		r.Use(httptracer.Tracer(tracing.NewReloadableTracer(svr.tracingSvc), httptracer.Config{
			ServiceName:    version.AppName,
			ServiceVersion: version.GetVersion().Version,
			SampleRate:     1,
			OperationName:  "http.internal.request",
			Tags:           tags,
		}))
	}

	r.Use(log.NewStructuredLogger(
		svr.logger,
		tracing.GetTraceIDFromRequest,
		clientIP,
	))
	r.Use(log.HTTPAddLoggerToContextMiddleware())
	r.Use(svr.metricsCl.Instrument("internal"))
	r.Use(middleware.Recoverer)

	healthHandler := health.NewHandler()
	// Listen path
	r.Handle("/metrics", svr.metricsCl.GetExposeHandler())
	r.Handle("/health", healthHandler)

	return r
}

// clientIP returns the forwarded client address, falling back to the remote address.
func clientIP(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}

	if ip == "" {
		ip = r.RemoteAddr
	}

	return ip
}
