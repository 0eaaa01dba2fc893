package model

// FlightResults is the scalar summary of a run, derived once from the full
// telemetry and issue list after the loop ends. It is never mutated
// afterward.
type FlightResults struct {
	MaxAltitude        float64 `json:"maxAltitude"`        // m
	MaxVelocity        float64 `json:"maxVelocity"`        // m/s
	MaxAcceleration    float64 `json:"maxAcceleration"`    // m/s²
	MaxMach            float64 `json:"maxMach"`
	MaxDynamicPressure float64 `json:"maxDynamicPressure"` // Pa

	FlightTime   float64 `json:"flightTime"`   // s, liftoff to ground
	BurnoutTime  float64 `json:"burnoutTime"`  // s
	ApogeeTime   float64 `json:"apogeeTime"`   // s
	RecoveryTime float64 `json:"recoveryTime"` // s

	LandingDistance float64 `json:"landingDistance"` // m downrange
	StabilityMargin float64 `json:"stabilityMargin"` // calibers

	Successful bool          `json:"successful"`
	Issues     []FlightIssue `json:"issues"`
	Score      float64       `json:"score"` // 0–100
}

// ValidationReport is the outcome of a standalone configuration check.
// The validator never fails outright; errors here are data for the caller
// to act on.
type ValidationReport struct {
	Errors   []FlightIssue `json:"errors"`
	Warnings []FlightIssue `json:"warnings"`
}

// Valid reports whether the configuration has no blocking errors.
func (r ValidationReport) Valid() bool { return len(r.Errors) == 0 }

// All returns errors followed by warnings as one issue list.
func (r ValidationReport) All() []FlightIssue {
	out := make([]FlightIssue, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}

// PerformanceEstimate is the closed-form design-time estimate: no
// time-stepping, intentionally coarse.
type PerformanceEstimate struct {
	EstimatedAltitude float64 `json:"estimatedAltitude"` // m
	EstimatedVelocity float64 `json:"estimatedVelocity"` // m/s
	ThrustToWeight    float64 `json:"thrustToWeight"`
	StabilityMargin   float64 `json:"stabilityMargin"` // calibers
}
