package core

import (
	"math"
	"reflect"
	"testing"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

func TestSimulateNominalFlight(t *testing.T) {
	results, telemetry := Simulate(testRocket(), model.DefaultWeather(), model.SimulationOptions{})

	if !results.Successful {
		t.Fatalf("nominal flight unsuccessful, issues: %+v", results.Issues)
	}
	if len(telemetry) == 0 {
		t.Fatal("no telemetry recorded")
	}

	if results.MaxAltitude <= 50 || results.MaxAltitude >= 500 {
		t.Errorf("max altitude = %v, want within (50, 500) m", results.MaxAltitude)
	}
	if results.MaxVelocity <= 20 || results.MaxVelocity >= 150 {
		t.Errorf("max velocity = %v, want within (20, 150) m/s (subsonic)", results.MaxVelocity)
	}
	if results.FlightTime <= 5 || results.FlightTime >= 30 {
		t.Errorf("flight time = %v, want within (5, 30) s", results.FlightTime)
	}
	if results.MaxMach >= 1 {
		t.Errorf("max Mach = %v, want subsonic", results.MaxMach)
	}
	if results.ApogeeTime <= results.BurnoutTime {
		t.Errorf("apogee (%v s) not after burnout (%v s)", results.ApogeeTime, results.BurnoutTime)
	}
	if results.Score < 0 || results.Score > 100 {
		t.Errorf("score = %v, want within [0, 100]", results.Score)
	}

	// The flight ends on the ground.
	last := telemetry[len(telemetry)-1]
	if last.Phase != model.PhaseLanding {
		t.Errorf("final phase = %v, want LANDING", last.Phase)
	}
	if last.Altitude != 0 {
		t.Errorf("final altitude = %v, want 0", last.Altitude)
	}
}

func TestSimulateLiftsOffThePad(t *testing.T) {
	results, telemetry := Simulate(testRocket(), model.DefaultWeather(), model.SimulationOptions{})

	// Ignition happens at Y=0: the first powered steps must not read as a
	// landing.
	if results.MaxAltitude <= 0 {
		t.Fatalf("rocket never left the pad: max altitude %v", results.MaxAltitude)
	}
	if results.FlightTime < 1 {
		t.Errorf("flight time = %v s, want a full flight, not an on-pad termination", results.FlightTime)
	}
	if len(telemetry) <= 2 {
		t.Errorf("only %d telemetry points recorded", len(telemetry))
	}
	for _, is := range results.Issues {
		if is.Code == model.CodeGroundImpact && is.Time < 1 {
			t.Errorf("ground impact reported at t=%v, before the flight happened", is.Time)
		}
	}
}

func TestSimulateNoThrustBlocksFlight(t *testing.T) {
	cfg := testRocket()
	cfg.Engine.Thrust = 0

	results, telemetry := Simulate(cfg, model.DefaultWeather(), model.SimulationOptions{})

	if results.Successful {
		t.Error("zero-thrust flight reported successful")
	}
	if len(telemetry) != 0 {
		t.Errorf("telemetry recorded for a blocked flight: %d points", len(telemetry))
	}
	if results.Score != 0 {
		t.Errorf("score for a blocked flight = %v, want 0", results.Score)
	}
	if !hasIssueCode(results.Issues, model.CodeNoThrust, model.IssueError) {
		t.Errorf("missing %s error, issues: %+v", model.CodeNoThrust, results.Issues)
	}
}

func TestSimulateMassAccounting(t *testing.T) {
	cfg := testRocket()
	_, telemetry := Simulate(cfg, model.DefaultWeather(), model.SimulationOptions{DetailedTelemetry: true})

	boostPoints := 0
	prevMass := math.Inf(1)
	finalMass := 0.0
	for _, pt := range telemetry {
		switch pt.Phase {
		case model.PhaseBoost:
			boostPoints++
			if pt.Mass >= prevMass {
				t.Fatalf("mass not strictly decreasing during boost at t=%v: %v -> %v", pt.Time, prevMass, pt.Mass)
			}
			prevMass = pt.Mass
		case model.PhaseCoast, model.PhaseRecovery:
			finalMass = pt.Mass
		}
	}
	if boostPoints == 0 {
		t.Fatal("no boost-phase telemetry")
	}

	lost := cfg.TotalMass() - finalMass
	stepTolerance := cfg.Engine.PropellantMass / cfg.Engine.BurnTime * 0.01
	if math.Abs(lost-cfg.Engine.PropellantMass) > stepTolerance {
		t.Errorf("propellant burned = %v, want ≈ %v (±%v)", lost, cfg.Engine.PropellantMass, stepTolerance)
	}

	// After burnout the mass must hold constant.
	sawCoast := false
	coastMass := 0.0
	for _, pt := range telemetry {
		if pt.Phase == model.PhaseCoast || pt.Phase == model.PhaseRecovery {
			if !sawCoast {
				coastMass = pt.Mass
				sawCoast = true
			} else if pt.Mass != coastMass {
				t.Fatalf("mass changed after burnout at t=%v: %v != %v", pt.Time, pt.Mass, coastMass)
			}
		}
	}
}

func TestSimulateTelemetryTimeMonotonic(t *testing.T) {
	for _, detailed := range []bool{false, true} {
		_, telemetry := Simulate(testRocket(), model.DefaultWeather(), model.SimulationOptions{DetailedTelemetry: detailed})
		for i := 1; i < len(telemetry); i++ {
			if telemetry[i].Time <= telemetry[i-1].Time {
				t.Fatalf("detailed=%v: time not strictly increasing at index %d: %v -> %v",
					detailed, i, telemetry[i-1].Time, telemetry[i].Time)
			}
		}
	}
}

func TestSimulateTelemetrySampling(t *testing.T) {
	opts := model.SimulationOptions{}
	_, coarse := Simulate(testRocket(), model.DefaultWeather(), opts)

	opts.DetailedTelemetry = true
	_, fine := Simulate(testRocket(), model.DefaultWeather(), opts)

	if len(fine) < 5*len(coarse) {
		t.Errorf("detailed telemetry (%d points) not substantially denser than coarse (%d points)", len(fine), len(coarse))
	}
}

func TestSimulateThrustWindowInTelemetry(t *testing.T) {
	cfg := testRocket()
	_, telemetry := Simulate(cfg, model.DefaultWeather(), model.SimulationOptions{DetailedTelemetry: true})

	for _, pt := range telemetry {
		if pt.Phase == model.PhaseBoost {
			if pt.Thrust != cfg.Engine.Thrust {
				t.Fatalf("thrust during boost at t=%v = %v, want %v", pt.Time, pt.Thrust, cfg.Engine.Thrust)
			}
		} else if pt.Thrust != 0 {
			t.Fatalf("thrust outside boost at t=%v (%v) = %v, want 0", pt.Time, pt.Phase, pt.Thrust)
		}
	}
}

func TestSimulateDragNonNegative(t *testing.T) {
	_, telemetry := Simulate(testRocket(), model.DefaultWeather(), model.SimulationOptions{DetailedTelemetry: true})

	for _, pt := range telemetry {
		if pt.Drag < 0 {
			t.Fatalf("negative drag at t=%v: %v", pt.Time, pt.Drag)
		}
		if pt.Drag == 0 && pt.Velocity.Magnitude() > 0 && pt.Phase != model.PhaseLanding {
			t.Fatalf("zero drag while moving at t=%v (speed %v)", pt.Time, pt.Velocity.Magnitude())
		}
	}
}

func TestSimulateDeterminism(t *testing.T) {
	cfg := testRocket()
	weather := model.DefaultWeather()
	opts := model.SimulationOptions{DetailedTelemetry: true}

	r1, t1 := Simulate(cfg, weather, opts)
	r2, t2 := Simulate(cfg, weather, opts)

	if !reflect.DeepEqual(r1, r2) {
		t.Error("results differ between identical runs")
	}
	if !reflect.DeepEqual(t1, t2) {
		t.Error("telemetry differs between identical runs")
	}
}

func TestSimulateLaunchRodConstrainsHeading(t *testing.T) {
	cfg := testRocket()
	cfg.Launch.Angle = 10
	cfg.Launch.RodLength = 1.5
	weather := model.DefaultWeather()
	weather.WindSpeed = 0

	_, telemetry := Simulate(cfg, weather, model.SimulationOptions{DetailedTelemetry: true})

	wantRatio := math.Tan(10 * math.Pi / 180)
	checked := 0
	for _, pt := range telemetry {
		if pt.Position.Magnitude() == 0 || pt.Position.Magnitude() >= cfg.Launch.RodLength {
			continue
		}
		if pt.Velocity.Y <= 0 {
			continue
		}
		ratio := pt.Velocity.X / pt.Velocity.Y
		if math.Abs(ratio-wantRatio) > 1e-9 {
			t.Fatalf("heading off the rod angle at t=%v: vx/vy = %v, want %v", pt.Time, ratio, wantRatio)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no on-rod telemetry points to check")
	}
}

func TestSimulateRejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts model.SimulationOptions
		code string
	}{
		{"negative time step", model.SimulationOptions{TimeStep: -0.01}, model.CodeInvalidTimeStep},
		{"NaN time step", model.SimulationOptions{TimeStep: math.NaN()}, model.CodeInvalidTimeStep},
		{"negative duration", model.SimulationOptions{MaxFlightTime: -10}, model.CodeInvalidDuration},
	}
	for _, tc := range cases {
		results, telemetry := Simulate(testRocket(), model.DefaultWeather(), tc.opts)
		if results.Successful {
			t.Errorf("%s: flight reported successful", tc.name)
		}
		if len(telemetry) != 0 {
			t.Errorf("%s: loop ran despite invalid options", tc.name)
		}
		if !hasIssueCode(results.Issues, tc.code, model.IssueError) {
			t.Errorf("%s: missing %s error, issues: %+v", tc.name, tc.code, results.Issues)
		}
	}
}

func TestSimulateTerminatesAtMaxFlightTime(t *testing.T) {
	// Gravity switched off: the rocket would climb forever, so only the
	// duration ceiling can end the loop.
	p := DefaultPhysics()
	p.Gravity = 0

	opts := model.SimulationOptions{MaxFlightTime: 2}
	results, telemetry := SimulateWithPhysics(p, testRocket(), model.DefaultWeather(), opts)

	if len(telemetry) == 0 {
		t.Fatal("no telemetry recorded")
	}
	last := telemetry[len(telemetry)-1]
	if last.Time > 2 {
		t.Errorf("telemetry past the duration ceiling: t=%v", last.Time)
	}
	if hasIssueCode(results.Issues, model.CodeGroundImpact, model.IssueInfo) {
		t.Errorf("unexpected ground impact in a flight that never descends")
	}
}

func TestSimulateGroundImpactRecorded(t *testing.T) {
	results, _ := Simulate(testRocket(), model.DefaultWeather(), model.SimulationOptions{})
	if !hasIssueCode(results.Issues, model.CodeGroundImpact, model.IssueInfo) {
		t.Errorf("missing ground impact marker, issues: %+v", results.Issues)
	}
}

func hasIssueCode(issues []model.FlightIssue, code string, kind model.IssueKind) bool {
	for _, is := range issues {
		if is.Code == code && is.Kind == kind {
			return true
		}
	}
	return false
}
