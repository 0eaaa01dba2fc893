package core

import (
	"math"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// EstimatePerformance produces the closed-form design-time estimate used
// for live feedback while editing a rocket: no time-stepping, no telemetry.
//
// The velocity estimate is the ideal rocket equation derated by 0.7 to
// account for drag and gravity losses; the altitude estimate is the
// drag-free ballistic rise v²/2g. Both are intentionally coarse and are not
// a substitute for a full simulation.
func EstimatePerformance(cfg model.RocketConfiguration) model.PerformanceEstimate {
	p := DefaultPhysics()

	est := model.PerformanceEstimate{StabilityMargin: stabilityMargin(cfg)}

	m0 := cfg.TotalMass()
	if m0 > 0 {
		est.ThrustToWeight = cfg.Engine.Thrust / (m0 * p.Gravity)
	}

	mf := m0 - cfg.Engine.PropellantMass
	if cfg.Engine.SpecificImpulse > 0 && m0 > 0 && mf > 0 && mf < m0 {
		deltaV := cfg.Engine.SpecificImpulse * p.Gravity * math.Log(m0/mf)
		est.EstimatedVelocity = 0.7 * deltaV
		est.EstimatedAltitude = est.EstimatedVelocity * est.EstimatedVelocity / (2 * p.Gravity)
	}

	return est
}

// stabilityMargin is the quick Barrowman-style approximation used across
// the validator, scorer, and estimator: center of pressure at
// 0.7·bodyLength + 0.5·finRootChord, center of gravity at 0.4·bodyLength,
// margin expressed in calibers (body diameters).
func stabilityMargin(cfg model.RocketConfiguration) float64 {
	if cfg.Body.Diameter <= 0 {
		return 0
	}
	cp := 0.7*cfg.Body.Length + 0.5*cfg.Fins.RootChord
	cg := 0.4 * cfg.Body.Length
	return (cp - cg) / cfg.Body.Diameter
}
