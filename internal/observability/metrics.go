package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// Run outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeBlocked = "blocked" // pre-flight validation stopped the loop
)

// FlightCollector bundles Prometheus metrics for the simulation surface and
// provides a ready-made /metrics handler for the hosting process.
type FlightCollector struct {
	gatherer prometheus.Gatherer

	Runs         *prometheus.CounterVec
	RunDurations prometheus.Histogram
	Issues       *prometheus.CounterVec

	FlightTimes  prometheus.Histogram
	MaxAltitudes prometheus.Histogram
}

// NewFlightCollector registers the simulation metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewFlightCollector(reg prometheus.Registerer) (*FlightCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of simulation runs, labeled by outcome.",
	}, []string{"outcome"})
	runs, err := registerCounterVec(reg, runs, "simulation_runs_total")
	if err != nil {
		return nil, err
	}

	issues := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_issues_total",
		Help: "Total number of flight issues produced by runs, labeled by kind.",
	}, []string{"kind"})
	issues, err = registerCounterVec(reg, issues, "simulation_issues_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_run_duration_seconds",
		Help:    "Wall-clock time spent inside one simulation run.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}), "simulation_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	flightTimes, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulated_flight_seconds",
		Help:    "Simulated flight time per run, liftoff to touchdown.",
		Buckets: []float64{1, 5, 10, 20, 30, 60, 120, 300},
	}), "simulated_flight_seconds")
	if err != nil {
		return nil, err
	}

	altitudes, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulated_max_altitude_meters",
		Help:    "Apogee altitude per run.",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}), "simulated_max_altitude_meters")
	if err != nil {
		return nil, err
	}

	return &FlightCollector{
		gatherer:     gatherer,
		Runs:         runs,
		RunDurations: durations,
		Issues:       issues,
		FlightTimes:  flightTimes,
		MaxAltitudes: altitudes,
	}, nil
}

// ObserveRun records one completed simulation invocation.
func (c *FlightCollector) ObserveRun(results model.FlightResults, telemetryPoints int, elapsed time.Duration) {
	if c == nil {
		return
	}

	outcome := OutcomeFailed
	switch {
	case results.Successful:
		outcome = OutcomeSuccess
	case telemetryPoints == 0:
		outcome = OutcomeBlocked
	}
	if c.Runs != nil {
		c.Runs.WithLabelValues(outcome).Inc()
	}
	if c.RunDurations != nil {
		c.RunDurations.Observe(elapsed.Seconds())
	}
	if c.Issues != nil {
		for _, is := range results.Issues {
			c.Issues.WithLabelValues(is.Kind.String()).Inc()
		}
	}

	// Flight-shape metrics only make sense when the loop actually ran.
	if telemetryPoints > 0 {
		if c.FlightTimes != nil {
			c.FlightTimes.Observe(results.FlightTime)
		}
		if c.MaxAltitudes != nil {
			c.MaxAltitudes.Observe(results.MaxAltitude)
		}
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *FlightCollector) Handler() http.Handler {
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

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
