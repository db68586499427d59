package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/server"
	"github.com/kbukum/golinq/version"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the plan endpoint over HTTP",
		Long: `Start the HTTP server exposing POST /v1/query, GET /health and GET /version.

Telemetry is exported over OTLP HTTP when telemetry.enabled is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, rootOpts)
		},
	}
}

func serve(ctx context.Context, opts *RootOptions) error {
	cfg := opts.cfg
	log := opts.log

	var (
		observers []engine.Observer
		metrics   *observability.QueryMetrics
	)
	if cfg.Telemetry.Enabled {
		shutdown, m, obs, err := startTelemetry(ctx, opts)
		if err != nil {
			return err
		}
		defer shutdown()
		metrics = m
		observers = obs
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(metrics)
	srv.RegisterRoutes(cfg.Name, server.NewQueryHandler(opts.mode, observability.Observers(observers...), log))

	if err := srv.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return srv.Stop(context.Background())
}

// startTelemetry installs OTLP providers and returns the drain observers to
// attach. The returned func flushes and shuts both providers down.
func startTelemetry(ctx context.Context, opts *RootOptions) (func(), *observability.QueryMetrics, []engine.Observer, error) {
	cfg := opts.cfg
	tracerCfg := observability.DefaultTracerConfig(cfg.Name)
	tracerCfg.ServiceVersion = version.Short()
	tracerCfg.Environment = cfg.Environment
	tracerCfg.Endpoint = cfg.Telemetry.Endpoint
	tracerCfg.Insecure = cfg.Telemetry.Insecure
	tracerCfg.SampleRate = cfg.Telemetry.SampleRate

	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("starting tracer: %w", err)
	}

	meterCfg := observability.DefaultMeterConfig(cfg.Name)
	meterCfg.ServiceVersion = tracerCfg.ServiceVersion
	meterCfg.Environment = cfg.Environment
	meterCfg.Endpoint = cfg.Telemetry.Endpoint
	meterCfg.Insecure = cfg.Telemetry.Insecure

	mp, err := observability.InitMeter(ctx, meterCfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, nil, fmt.Errorf("starting meter: %w", err)
	}

	shutdown := func() {
		for name, fn := range map[string]func(context.Context) error{"tracer": tp.Shutdown, "meter": mp.Shutdown} {
			if err := fn(context.Background()); err != nil {
				opts.log.Warn("telemetry shutdown failed", logger.Fields("provider", name, logger.FieldError, err.Error()))
			}
		}
	}

	metrics, err := observability.NewQueryMetrics(observability.Meter(observability.InstrumentationName))
	if err != nil {
		shutdown()
		return nil, nil, nil, err
	}
	observers := []engine.Observer{metrics}
	if cfg.Engine.TraceDrains {
		observers = append(observers, observability.NewDrainTracer(nil))
	}
	return shutdown, metrics, observers, nil
}
