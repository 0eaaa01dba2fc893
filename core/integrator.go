package core

import (
	"math"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// simState is the mutable per-run state of the integrator. One instance is
// created per simulation and discarded when it returns; it is never shared
// between runs.
type simState struct {
	Position          model.Vec2
	Velocity          model.Vec2
	Acceleration      model.Vec2
	Mass              float64
	OnLaunchRod       bool
	ParachuteDeployed bool
}

func newSimState(cfg model.RocketConfiguration) *simState {
	return &simState{
		Mass:        cfg.TotalMass(),
		OnLaunchRod: true,
	}
}

// rodUnit returns the launch-rod direction as a unit vector. The launch
// angle is measured in degrees from vertical.
func rodUnit(cfg model.RocketConfiguration) model.Vec2 {
	rad := cfg.Launch.Angle * math.Pi / 180
	return model.Vec2{X: math.Sin(rad), Y: math.Cos(rad)}
}

// headingUnit is the direction thrust acts along: the rod direction until
// the rod is cleared (and whenever the rocket is motionless), the velocity
// direction afterward.
func (s *simState) headingUnit(cfg model.RocketConfiguration) model.Vec2 {
	speed := s.Velocity.Magnitude()
	if s.OnLaunchRod || speed == 0 {
		return rodUnit(cfg)
	}
	return model.Vec2{X: s.Velocity.X / speed, Y: s.Velocity.Y / speed}
}

// projectOntoRod constrains the acceleration to the rod heading while the
// rocket is still on the rod. The rod is rigid guidance: the rocket cannot
// deviate from its heading, and the rod cannot push the rocket downward
// into the pad.
func projectOntoRod(cfg model.RocketConfiguration, s *simState) {
	if s.Position.Magnitude() >= cfg.Launch.RodLength {
		s.OnLaunchRod = false
		return
	}
	u := rodUnit(cfg)
	along := s.Acceleration.X*u.X + s.Acceleration.Y*u.Y
	if along < 0 {
		along = 0
	}
	s.Acceleration = model.Vec2{X: u.X * along, Y: u.Y * along}
}

// telemetryStride is the sampling divisor when detailed telemetry is off.
const telemetryStride = 10

// Simulate runs a full flight for the given configuration, weather, and
// options and returns the summary results plus the sampled trajectory.
//
// Simulate never panics and never reports domain problems as Go errors:
// every failure mode is encoded as Results.Successful == false with the
// issue list populated. Identical inputs produce identical outputs.
func Simulate(cfg model.RocketConfiguration, weather model.WeatherConditions, opts model.SimulationOptions) (model.FlightResults, []model.TrajectoryPoint) {
	return SimulateWithPhysics(DefaultPhysics(), cfg, weather, opts)
}

// SimulateWithPhysics is Simulate with a substituted constants table. Tests
// use it to exercise alternate drag or gravity regimes.
func SimulateWithPhysics(p PhysicsConstants, cfg model.RocketConfiguration, weather model.WeatherConditions, opts model.SimulationOptions) (model.FlightResults, []model.TrajectoryPoint) {
	opts = opts.WithDefaults()

	issues := optionIssues(opts)
	report := validateWithPhysics(p, cfg)
	issues = append(issues, report.All()...)

	if hasErrors(issues) {
		// The loop never runs: degenerate zero-telemetry result carrying
		// the full diagnostic list.
		return failedResults(cfg, issues), nil
	}

	s := newSimState(cfg)
	dt := opts.TimeStep

	// Hard iteration ceiling so even pathological step/duration pairs
	// provably terminate.
	maxSteps := int(opts.MaxFlightTime/dt) + 1

	stride := telemetryStride
	if opts.DetailedTelemetry {
		stride = 1
	}

	var telemetry []model.TrajectoryPoint

	for step := 0; step <= maxSteps; step++ {
		t := float64(step) * dt
		if t > opts.MaxFlightTime {
			break
		}

		phase := nextPhase(cfg, s, t)
		if phase == model.PhaseLanding {
			s.Position.Y = 0
			issues = append(issues, groundImpactIssue(t))
			telemetry = append(telemetry, samplePoint(p, cfg, weather, s, t, phase, 0))
			break
		}

		f := computeForces(p, cfg, weather, s, phase, t, dt)
		s.Acceleration = model.Vec2{X: f.Net.X / s.Mass, Y: f.Net.Y / s.Mass}

		if s.OnLaunchRod {
			projectOntoRod(cfg, s)
		}

		s.Velocity.X += s.Acceleration.X * dt
		s.Velocity.Y += s.Acceleration.Y * dt
		s.Position.X += s.Velocity.X * dt
		s.Position.Y += s.Velocity.Y * dt

		if step%stride == 0 {
			telemetry = append(telemetry, samplePoint(p, cfg, weather, s, t, phase, f.Thrust))
		}

		issues = append(issues, checkAnomalies(p, s, t)...)
	}

	return aggregateResults(cfg, telemetry, issues), telemetry
}

// samplePoint snapshots the state after integration for the step at time t.
// Drag is recomputed from the sampled velocity rather than copied from the
// step's force evaluation, so every point's forces are consistent with its
// own kinematics.
func samplePoint(p PhysicsConstants, cfg model.RocketConfiguration, weather model.WeatherConditions, s *simState, t float64, phase model.FlightPhase, thrust float64) model.TrajectoryPoint {
	speed := s.Velocity.Magnitude()
	rho := p.AirDensity(s.Position.Y, weather.Temperature)
	drag := 0.5 * rho * speed * speed * p.dragCoefficient(phase) * cfg.ReferenceArea()
	return model.TrajectoryPoint{
		Time:            t,
		Position:        s.Position,
		Velocity:        s.Velocity,
		Acceleration:    s.Acceleration,
		Mass:            s.Mass,
		Thrust:          thrust,
		Drag:            drag,
		Mach:            p.MachNumber(speed, s.Position.Y, weather.Temperature),
		Altitude:        s.Position.Y,
		Phase:           phase,
		DynamicPressure: p.DynamicPressure(speed, s.Position.Y, weather.Temperature),
	}
}

// optionIssues rejects non-positive or non-finite loop bounds before any
// stepping happens. WithDefaults has already replaced zero values, so
// anything non-positive here was explicitly supplied.
func optionIssues(opts model.SimulationOptions) []model.FlightIssue {
	var out []model.FlightIssue
	if opts.TimeStep <= 0 || math.IsNaN(opts.TimeStep) || math.IsInf(opts.TimeStep, 0) {
		out = append(out, model.FlightIssue{
			Kind:     model.IssueError,
			Code:     model.CodeInvalidTimeStep,
			Message:  "time step must be a positive, finite number of seconds",
			Severity: 10,
		})
	}
	if opts.MaxFlightTime <= 0 || math.IsNaN(opts.MaxFlightTime) || math.IsInf(opts.MaxFlightTime, 0) {
		out = append(out, model.FlightIssue{
			Kind:     model.IssueError,
			Code:     model.CodeInvalidDuration,
			Message:  "maximum flight duration must be a positive, finite number of seconds",
			Severity: 10,
		})
	}
	return out
}
