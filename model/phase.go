package model

// FlightPhase is the closed set of states a flight moves through. The
// progression is one-way: PRELAUNCH → BOOST → COAST → RECOVERY → LANDING.
// Apogee and abort are markers/issues, not sustained phases.
type FlightPhase int

const (
	PhasePreLaunch FlightPhase = iota
	PhaseBoost
	PhaseCoast
	PhaseRecovery
	PhaseLanding
)

func (p FlightPhase) String() string {
	switch p {
	case PhasePreLaunch:
		return "PRELAUNCH"
	case PhaseBoost:
		return "BOOST"
	case PhaseCoast:
		return "COAST"
	case PhaseRecovery:
		return "RECOVERY"
	case PhaseLanding:
		return "LANDING"
	default:
		return "UNKNOWN"
	}
}
