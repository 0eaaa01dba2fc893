package core

import (
	"math"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// aggregateResults derives the scalar flight summary from the full telemetry
// stream and accumulated issues. Called exactly once, after the loop ends.
func aggregateResults(cfg model.RocketConfiguration, telemetry []model.TrajectoryPoint, issues []model.FlightIssue) model.FlightResults {
	res := model.FlightResults{
		Issues:          issues,
		Successful:      !hasErrors(issues),
		StabilityMargin: stabilityMargin(cfg),
	}

	seenBoost := false
	for _, pt := range telemetry {
		speed := pt.Velocity.Magnitude()
		if pt.Altitude > res.MaxAltitude {
			res.MaxAltitude = pt.Altitude
		}
		if speed > res.MaxVelocity {
			res.MaxVelocity = speed
		}
		if a := pt.Acceleration.Magnitude(); a > res.MaxAcceleration {
			res.MaxAcceleration = a
		}
		if pt.Mach > res.MaxMach {
			res.MaxMach = pt.Mach
		}
		if pt.DynamicPressure > res.MaxDynamicPressure {
			res.MaxDynamicPressure = pt.DynamicPressure
		}

		switch {
		case pt.Phase == model.PhaseBoost:
			seenBoost = true
		case seenBoost && res.BurnoutTime == 0:
			// First sampled point after the boost phase ended.
			res.BurnoutTime = pt.Time
		}
		if res.ApogeeTime == 0 && pt.Time > 0 && pt.Velocity.Y <= 0 {
			res.ApogeeTime = pt.Time
		}
		if res.RecoveryTime == 0 && pt.Phase == model.PhaseRecovery {
			res.RecoveryTime = pt.Time
		}
	}

	if n := len(telemetry); n > 0 {
		last := telemetry[n-1]
		res.FlightTime = last.Time
		res.LandingDistance = math.Abs(last.Position.X)
	}
	if res.RecoveryTime == 0 {
		res.RecoveryTime = res.FlightTime
	}

	res.Score = scoreFlight(res)
	return res
}

// failedResults builds the degenerate result returned when pre-flight
// validation blocks the loop: no telemetry, zero score, unsuccessful, full
// issue list preserved.
func failedResults(cfg model.RocketConfiguration, issues []model.FlightIssue) model.FlightResults {
	return model.FlightResults{
		Issues:          issues,
		Successful:      false,
		StabilityMargin: stabilityMargin(cfg),
		Score:           0,
	}
}

// scoreFlight turns a summary into a 0–100 score. The breakdown: a 50-point
// base, up to 25 for altitude (one point per 10 m), up to 15 for stability
// (5 per caliber once the margin reaches 1.0), 10 for a clean flight, less
// 20 per error and the severity of each warning.
func scoreFlight(res model.FlightResults) float64 {
	score := 50.0
	score += math.Min(25, res.MaxAltitude/10)
	if res.StabilityMargin >= 1 {
		score += math.Min(15, res.StabilityMargin*5)
	}
	if res.Successful {
		score += 10
	}
	for _, is := range res.Issues {
		switch is.Kind {
		case model.IssueError:
			score -= 20
		case model.IssueWarning:
			score -= float64(is.Severity)
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
