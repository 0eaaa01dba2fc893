package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/rocketflight-engine/core"
	"github.com/signalsfoundry/rocketflight-engine/internal/logging"
	"github.com/signalsfoundry/rocketflight-engine/internal/observability"
)

// server hosts the engine behind a small JSON API. Every request is one
// isolated simulation invocation; the engine itself holds no state between
// them.
type server struct {
	log     logging.Logger
	metrics *observability.FlightCollector
	tracer  trace.Tracer
}

func newServer(log logging.Logger, metrics *observability.FlightCollector) *server {
	if log == nil {
		log = logging.Noop()
	}
	return &server{
		log:     log,
		metrics: metrics,
		tracer:  otel.Tracer("rocketsim"),
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /simulate", s.handleSimulate)
	mux.HandleFunc("POST /validate", s.handleValidate)
	mux.HandleFunc("POST /estimate", s.handleEstimate)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return mux
}

type simulateRequest struct {
	Rocket  rocketSpec   `json:"rocket"`
	Weather *weatherSpec `json:"weather"`
	Options optionsSpec  `json:"options"`
}

func (s *server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx, log := logging.WithRunLogger(r.Context(), s.log)
	ctx, span := s.tracer.Start(ctx, "simulate")
	defer span.End()

	start := time.Now()
	results, telemetry := core.Simulate(req.Rocket.toModel(), req.Weather.toModel(), req.Options.toModel())
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.Bool("flight.successful", results.Successful),
		attribute.Float64("flight.max_altitude_m", results.MaxAltitude),
		attribute.Int("flight.telemetry_points", len(telemetry)),
	)
	s.metrics.ObserveRun(results, len(telemetry), elapsed)

	log.Info(ctx, "flight simulated",
		logging.Float64("max_altitude_m", results.MaxAltitude),
		logging.Float64("score", results.Score),
		logging.Int("issues", len(results.Issues)),
		logging.Any("elapsed", elapsed))

	writeJSONResponse(ctx, w, log, simulateResponse{Results: results, Telemetry: telemetry})
}

func (s *server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx, log := logging.WithRunLogger(r.Context(), s.log)
	report := core.ValidateConfiguration(req.Rocket.toModel())
	log.Info(ctx, "configuration validated",
		logging.Int("errors", len(report.Errors)),
		logging.Int("warnings", len(report.Warnings)))

	writeJSONResponse(ctx, w, log, report)
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx, log := logging.WithRunLogger(r.Context(), s.log)
	writeJSONResponse(ctx, w, log, core.EstimatePerformance(req.Rocket.toModel()))
}

func writeJSONResponse(ctx context.Context, w http.ResponseWriter, log logging.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn(ctx, "write response", logging.String("error", err.Error()))
	}
}

// serve runs the HTTP API until the listener fails or the process exits.
func serve(ctx context.Context, addr string, log logging.Logger) error {
	metrics, err := observability.NewFlightCollector(nil)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(log, metrics).routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info(ctx, "serving simulation API", logging.String("addr", addr))
	return srv.ListenAndServe()
}
