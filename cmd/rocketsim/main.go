package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/signalsfoundry/rocketflight-engine/core"
	"github.com/signalsfoundry/rocketflight-engine/internal/logging"
	"github.com/signalsfoundry/rocketflight-engine/internal/observability"
	"github.com/signalsfoundry/rocketflight-engine/model"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML flight scenario")
	listen := flag.String("listen", "", "serve the HTTP API on this address instead of running one scenario")
	validateOnly := flag.Bool("validate-only", false, "validate the configuration and exit without simulating")
	estimateOnly := flag.Bool("estimate", false, "print the closed-form performance estimate and exit")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	if *listen != "" {
		if err := serve(ctx, *listen, log); err != nil {
			log.Error(ctx, "server stopped", logging.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "rocketsim: either -scenario or -listen is required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*scenarioPath)
	if err != nil {
		log.Error(ctx, "open scenario", logging.String("path", *scenarioPath), logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	cfg, weather, opts, err := loadScenario(f)
	if err != nil {
		log.Error(ctx, "load scenario", logging.String("path", *scenarioPath), logging.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, log = logging.WithRunLogger(ctx, log)

	switch {
	case *validateOnly:
		report := core.ValidateConfiguration(cfg)
		log.Info(ctx, "configuration validated",
			logging.Int("errors", len(report.Errors)),
			logging.Int("warnings", len(report.Warnings)))
		writeJSON(report)
		if !report.Valid() {
			os.Exit(1)
		}

	case *estimateOnly:
		writeJSON(core.EstimatePerformance(cfg))

	default:
		tracer := otel.Tracer("rocketsim")
		ctx, span := tracer.Start(ctx, "simulate")
		start := time.Now()
		results, telemetry := core.Simulate(cfg, weather, opts)
		span.SetAttributes(
			attribute.Bool("flight.successful", results.Successful),
			attribute.Float64("flight.max_altitude_m", results.MaxAltitude),
			attribute.Int("flight.telemetry_points", len(telemetry)),
		)
		span.End()

		log.Info(ctx, "flight simulated",
			logging.Float64("max_altitude_m", results.MaxAltitude),
			logging.Float64("max_velocity_mps", results.MaxVelocity),
			logging.Float64("flight_time_s", results.FlightTime),
			logging.Float64("score", results.Score),
			logging.Int("issues", len(results.Issues)),
			logging.Any("elapsed", time.Since(start)))

		writeJSON(simulateResponse{Results: results, Telemetry: telemetry})
		if !results.Successful {
			os.Exit(1)
		}
	}
}

// simulateResponse is the JSON body shared by the CLI output and the HTTP
// API: the summary plus the sampled trajectory.
type simulateResponse struct {
	Results   model.FlightResults     `json:"results"`
	Telemetry []model.TrajectoryPoint `json:"telemetry"`
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "rocketsim: encode output: %v\n", err)
		os.Exit(1)
	}
}
