package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// ValidateConfiguration checks a rocket design against the same physics the
// simulation uses, without running the stepping loop. It never fails: the
// outcome is always a structured report, and the caller decides whether the
// errors in it block a simulation.
func ValidateConfiguration(cfg model.RocketConfiguration) model.ValidationReport {
	return validateWithPhysics(DefaultPhysics(), cfg)
}

func validateWithPhysics(p PhysicsConstants, cfg model.RocketConfiguration) model.ValidationReport {
	var rep model.ValidationReport

	addErr := func(code, msg string, severity int) {
		rep.Errors = append(rep.Errors, model.FlightIssue{
			Kind: model.IssueError, Code: code, Message: msg, Severity: severity,
		})
	}
	addWarn := func(code, msg string, severity int) {
		rep.Warnings = append(rep.Warnings, model.FlightIssue{
			Kind: model.IssueWarning, Code: code, Message: msg, Severity: severity,
		})
	}

	totalMass := cfg.TotalMass()

	if cfg.Engine.Thrust <= 0 {
		addErr(model.CodeNoThrust, "engine thrust must be positive", 10)
	}
	if totalMass <= 0 {
		addErr(model.CodeNonPositiveMass, "total liftoff mass must be positive", 10)
	}
	if cfg.Engine.BurnTime <= 0 {
		addErr(model.CodeNonPositiveBurn, "engine burn time must be positive", 9)
	}
	if cfg.Engine.PropellantMass >= cfg.Engine.TotalMass {
		addErr(model.CodePropellantMass, "propellant mass must be less than total engine mass", 10)
	}

	if minDia, ok := minEngineDiameter[strings.ToUpper(cfg.Engine.Class)]; ok && cfg.Body.Diameter < minDia {
		addErr(model.CodeBodyTooNarrow, fmt.Sprintf(
			"body diameter %.0f mm is below the %.0f mm minimum for a class %s motor",
			cfg.Body.Diameter*1000, minDia*1000, strings.ToUpper(cfg.Engine.Class)), 8)
	}

	if cfg.Engine.Thrust > 0 && totalMass > 0 {
		twr := cfg.Engine.Thrust / (totalMass * p.Gravity)
		switch {
		case twr < 3:
			addErr(model.CodeLowThrustToWeight, fmt.Sprintf(
				"thrust-to-weight ratio %.1f is below 3: the engine cannot lift this rocket safely", twr), 9)
		case twr < 5:
			addWarn(model.CodeLowThrustToWeight, fmt.Sprintf(
				"thrust-to-weight ratio %.1f is below the recommended 5", twr), 5)
		}
	}

	if rate, ok := parachuteDescentRate(p, cfg); ok && rate > 7 {
		addWarn(model.CodeHighDescentRate, fmt.Sprintf(
			"estimated descent rate %.1f m/s exceeds the 7 m/s safe landing speed", rate), 4)
	}

	if margin := stabilityMargin(cfg); margin < 1 {
		addWarn(model.CodeLowStability, fmt.Sprintf(
			"stability margin %.2f calibers is below the 1.0 caliber threshold", margin), 6)
	}

	if area := cfg.ReferenceArea(); area > 0 {
		if ratio := cfg.Fins.PlanformArea() / area; ratio < 0.5 {
			addWarn(model.CodeSmallFinArea, fmt.Sprintf(
				"fin area is only %.2fx the body cross-section; fins this small may not stabilize the rocket", ratio), 3)
		}
	}

	if cfg.Body.Diameter > 0 {
		if ld := cfg.Body.Length / cfg.Body.Diameter; ld < 10 || ld > 30 {
			addWarn(model.CodeBadFineness, fmt.Sprintf(
				"length-to-diameter ratio %.1f is outside the recommended 10–30 range", ld), 2)
		}
	}

	if cfg.Launch.Angle > 5 {
		addWarn(model.CodeSteepLaunchAngle, fmt.Sprintf(
			"launch angle %.1f° exceeds the recommended 5° maximum", cfg.Launch.Angle), 2)
	}
	if cfg.Launch.RodLength < cfg.Body.Length {
		addWarn(model.CodeShortLaunchRod, "launch rod is shorter than the rocket body", 3)
	}

	return rep
}

// parachuteDescentRate estimates the steady-state descent speed under
// canopy: v = sqrt(2·m·g / (ρ0·Cd·A)). Returns ok=false when the recovery
// system is not a sized parachute.
func parachuteDescentRate(p PhysicsConstants, cfg model.RocketConfiguration) (float64, bool) {
	if !strings.EqualFold(cfg.Recovery.Type, "PARACHUTE") || cfg.Recovery.ParachuteDiameter <= 0 {
		return 0, false
	}
	count := cfg.Recovery.ParachuteCount
	if count < 1 {
		count = 1
	}
	r := cfg.Recovery.ParachuteDiameter / 2
	area := float64(count) * math.Pi * r * r
	denom := p.SeaLevelDensity * p.ParachuteDragCoeff * area
	if denom <= 0 {
		return 0, false
	}
	return math.Sqrt(2 * cfg.TotalMass() * p.Gravity / denom), true
}

func hasErrors(issues []model.FlightIssue) bool {
	for _, is := range issues {
		if is.Kind == model.IssueError {
			return true
		}
	}
	return false
}
