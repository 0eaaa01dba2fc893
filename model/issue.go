package model

// IssueKind classifies a FlightIssue. Errors mark a flight unsuccessful;
// warnings only reduce the score; infos are bookkeeping.
type IssueKind int

const (
	IssueError IssueKind = iota
	IssueWarning
	IssueInfo
)

func (k IssueKind) String() string {
	switch k {
	case IssueError:
		return "error"
	case IssueWarning:
		return "warning"
	case IssueInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Stable issue codes. Callers key UI copy and tests off these, so they are
// part of the engine's contract.
const (
	CodeNoThrust          = "NO_THRUST"
	CodeNonPositiveMass   = "NON_POSITIVE_MASS"
	CodeNonPositiveBurn   = "NON_POSITIVE_BURN_TIME"
	CodePropellantMass    = "PROPELLANT_EXCEEDS_ENGINE_MASS"
	CodeBodyTooNarrow     = "BODY_TOO_NARROW_FOR_ENGINE"
	CodeInvalidTimeStep   = "INVALID_TIME_STEP"
	CodeInvalidDuration   = "INVALID_FLIGHT_DURATION"
	CodeLowThrustToWeight = "LOW_THRUST_TO_WEIGHT"
	CodeHighDescentRate   = "HIGH_DESCENT_RATE"
	CodeLowStability      = "LOW_STABILITY_MARGIN"
	CodeSmallFinArea      = "SMALL_FIN_AREA"
	CodeBadFineness       = "FINENESS_OUT_OF_RANGE"
	CodeSteepLaunchAngle  = "STEEP_LAUNCH_ANGLE"
	CodeShortLaunchRod    = "SHORT_LAUNCH_ROD"
	CodeSupersonic        = "SUPERSONIC_FLIGHT"
	CodeHighAcceleration  = "HIGH_ACCELERATION"
	CodeGroundImpact      = "GROUND_IMPACT"
)

// FlightIssue is a severity-tagged diagnostic accumulated during validation
// or flight. Issues are append-only: nothing removes or deduplicates them.
type FlightIssue struct {
	Kind     IssueKind `json:"kind"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Time     float64   `json:"time,omitempty"` // s into the flight, 0 for pre-flight
	Severity int       `json:"severity"`       // 1 (mild) to 10 (severe)
}
