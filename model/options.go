package model

// SimulationOptions bounds the integrator loop. Zero values mean "use the
// default"; negative values are rejected by the engine before any stepping
// happens.
type SimulationOptions struct {
	TimeStep          float64 // s, default 0.01
	MaxFlightTime     float64 // s, default 300
	DetailedTelemetry bool    // record every step instead of every 10th
}

const (
	DefaultTimeStep      = 0.01
	DefaultMaxFlightTime = 300
)

// WithDefaults returns a copy with zero fields replaced by the defaults.
// Negative fields are left as-is so the engine can surface them as a
// contract violation rather than silently looping forever.
func (o SimulationOptions) WithDefaults() SimulationOptions {
	if o.TimeStep == 0 {
		o.TimeStep = DefaultTimeStep
	}
	if o.MaxFlightTime == 0 {
		o.MaxFlightTime = DefaultMaxFlightTime
	}
	return o
}
