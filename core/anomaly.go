package core

import (
	"fmt"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// checkAnomalies runs the per-step safety checks. A triggered check does
// not stop the simulation; it only appends an issue. Issues accumulate on
// every step they fire; nothing deduplicates them.
func checkAnomalies(p PhysicsConstants, s *simState, t float64) []model.FlightIssue {
	var out []model.FlightIssue

	if speed := s.Velocity.Magnitude(); speed > p.SeaLevelSoundSpeed {
		out = append(out, model.FlightIssue{
			Kind:     model.IssueWarning,
			Code:     model.CodeSupersonic,
			Message:  fmt.Sprintf("supersonic flight: %.0f m/s", speed),
			Time:     t,
			Severity: 5,
		})
	}

	if a := s.Acceleration.Magnitude(); a > p.HighAccelThreshold {
		out = append(out, model.FlightIssue{
			Kind:     model.IssueWarning,
			Code:     model.CodeHighAcceleration,
			Message:  fmt.Sprintf("high acceleration: %.0f m/s²", a),
			Time:     t,
			Severity: 6,
		})
	}

	return out
}

// groundImpactIssue marks the touchdown that terminates the loop.
func groundImpactIssue(t float64) model.FlightIssue {
	return model.FlightIssue{
		Kind:     model.IssueInfo,
		Code:     model.CodeGroundImpact,
		Message:  fmt.Sprintf("ground impact at t=%.2f s", t),
		Time:     t,
		Severity: 1,
	}
}
