package tracing

import (
	"context"
	"io"
	"sync"
	"time"

	"emperror.dev/errors"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/config"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/log"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/metrics"
	"github.com/oxyno-zeta/profiling-logger/pkg/profiling-logger/version"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerprom "github.com/uber/jaeger-lib/metrics/prometheus"
)

type service struct {
	closer     io.Closer
	tracer     opentracing.Tracer
	cfgManager config.Manager
	logger     log.TracingLogger
	metricsCl  metrics.Client
	// Shared by all tracers: a factory registers its collectors once.
	metricsFactory *jaegerprom.Factory
	mu             sync.RWMutex
}

func (s *service) GetTracer() opentracing.Tracer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tracer
}

func (s *service) StartTrace(ctx context.Context, operationName string) (Trace, context.Context) {
	opts := make([]opentracing.StartSpanOption, 0, 1)

	// Check if a parent exists
	if parent := opentracing.SpanFromContext(ctx); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}

	span := s.GetTracer().StartSpan(operationName, opts...)

	return &trace{span: span}, opentracing.ContextWithSpan(ctx, span)
}

func (s *service) Reload() error {
	// Save closer
	s.mu.RLock()
	cl := s.closer
	s.mu.RUnlock()

	// Setup
	err := s.setup()
	if err != nil {
		return err
	}

	// Close old one
	return errors.WithStack(cl.Close())
}

func (s *service) Close() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return errors.WithStack(s.closer.Close())
}

func (s *service) setup() error {
	cfg := s.cfgManager.GetConfig()
	// Initialize configuration
	jcfg := jaegercfg.Configuration{
		ServiceName: version.AppName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
	}

	// Check if configuration can be set
	if cfg.Tracing == nil || !cfg.Tracing.Enabled {
		jcfg.Disabled = true
	} else {
		// Add reporter configuration
		jcfg.Reporter = &jaegercfg.ReporterConfig{
			LogSpans:  cfg.Tracing.LogSpan,
			QueueSize: cfg.Tracing.QueueSize,
		}

		// Check if flush interval is customized
		if cfg.Tracing.FlushInterval != "" {
			// Try to parse duration for flush interval
			dur, err := time.ParseDuration(cfg.Tracing.FlushInterval)
			if err != nil {
				return errors.WithStack(err)
			}

			jcfg.Reporter.BufferFlushInterval = dur
		}

		// Check if UDP is customized
		if cfg.Tracing.UDPHost != "" {
			jcfg.Reporter.LocalAgentHostPort = cfg.Tracing.UDPHost
		}

		// Add fixed tags
		for k, v := range cfg.Tracing.FixedTags {
			jcfg.Tags = append(jcfg.Tags, opentracing.Tag{Key: k, Value: v})
		}
	}

	// Initialize tracer with a logger and a metrics factory
	tracer, closer, err := jcfg.NewTracer(
		jaegercfg.Logger(s.logger),
		jaegercfg.Metrics(s.metricsFactory),
	)
	// Check error
	if err != nil {
		return errors.WithStack(err)
	}
	// Set the singleton opentracing.Tracer with the Jaeger tracer.
	opentracing.SetGlobalTracer(tracer)

	s.mu.Lock()
	s.closer = closer
	s.tracer = tracer
	s.mu.Unlock()

	return nil
}

func newService(cfgManager config.Manager, logger log.TracingLogger, metricsCl metrics.Client) (*service, error) {
	svc := &service{
		cfgManager: cfgManager,
		logger:     logger,
		metricsCl:  metricsCl,
		// Create prometheus metrics factory on the application registry
		metricsFactory: jaegerprom.New(jaegerprom.WithRegisterer(metricsCl.GetRegisterer())),
	}

	// Run setup
	err := svc.setup()
	if err != nil {
		return nil, err
	}

	return svc, nil
}
