package core

import (
	"math"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// stepForces is the force breakdown for one integration step.
type stepForces struct {
	Thrust float64 // N, magnitude along the heading
	Drag   float64 // N, magnitude opposing velocity
	Net    model.Vec2
}

// dragCoefficient returns the coarse two-regime drag coefficient: powered
// flight sees more base drag from the exhaust interaction than coasting.
func (p PhysicsConstants) dragCoefficient(phase model.FlightPhase) float64 {
	if phase == model.PhaseBoost {
		return p.BoostDragCoeff
	}
	return p.CoastDragCoeff
}

// thrustAt returns the motor thrust at elapsed time t. The motor is modeled
// as a constant-thrust burn: rated thrust through burnTime, zero after.
func thrustAt(cfg model.RocketConfiguration, phase model.FlightPhase, t float64) float64 {
	if phase == model.PhaseBoost && t <= cfg.Engine.BurnTime {
		return cfg.Engine.Thrust
	}
	return 0
}

// computeForces evaluates thrust, drag, weight, and the wind perturbation
// for the current state and, while the motor burns, depletes propellant
// linearly. This is the only place mass is mutated.
func computeForces(p PhysicsConstants, cfg model.RocketConfiguration, weather model.WeatherConditions, s *simState, phase model.FlightPhase, t, dt float64) stepForces {
	speed := s.Velocity.Magnitude()
	rho := p.AirDensity(s.Position.Y, weather.Temperature)
	area := cfg.ReferenceArea()

	thrust := thrustAt(cfg, phase, t)
	if thrust > 0 && cfg.Engine.BurnTime > 0 {
		burnRate := cfg.Engine.PropellantMass / cfg.Engine.BurnTime
		s.Mass -= burnRate * dt
		if dry := cfg.DryMass(); s.Mass < dry {
			s.Mass = dry
		}
	}

	drag := 0.5 * rho * speed * speed * p.dragCoefficient(phase) * area

	// Thrust acts along the heading: the rod angle until the rod is cleared,
	// the velocity vector afterward.
	heading := s.headingUnit(cfg)

	var net model.Vec2
	net.X = thrust * heading.X
	net.Y = thrust*heading.Y - s.Mass*p.Gravity

	if speed > 0 {
		net.X -= drag * s.Velocity.X / speed
		net.Y -= drag * s.Velocity.Y / speed
	}

	windSpeed, windDir := effectiveWind(cfg, weather)
	if windSpeed > 0 {
		// Small horizontal perturbation proportional to wind and airspeed.
		windForce := p.WindCoupling * rho * windSpeed * speed * area
		net.X += windForce * math.Cos(windDir*math.Pi/180)
	}

	return stepForces{Thrust: thrust, Drag: drag, Net: net}
}

// effectiveWind resolves the pad-specific wind override against the weather
// report. A launch-config wind speed > 0 wins.
func effectiveWind(cfg model.RocketConfiguration, weather model.WeatherConditions) (speed, directionDeg float64) {
	if cfg.Launch.WindSpeed > 0 {
		return cfg.Launch.WindSpeed, cfg.Launch.WindDirection
	}
	return weather.WindSpeed, weather.WindDirection
}
