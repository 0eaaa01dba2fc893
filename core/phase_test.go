package core

import (
	"testing"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

func TestPhaseProgression(t *testing.T) {
	cfg := testRocket() // burn time 2.5 s, deployment at 150 m

	cases := []struct {
		name  string
		time  float64
		state simState
		want  model.FlightPhase
	}{
		{"on the pad", 0, simState{}, model.PhasePreLaunch},
		{"ignition, still at rest on the pad", 0.01, simState{}, model.PhaseBoost},
		{"first step", 0.01, simState{Position: model.Vec2{Y: 0.001}, Velocity: model.Vec2{Y: 0.5}}, model.PhaseBoost},
		{"end of burn", 2.5, simState{Position: model.Vec2{Y: 120}, Velocity: model.Vec2{Y: 90}}, model.PhaseBoost},
		{"ascending after burnout", 2.6, simState{Position: model.Vec2{Y: 130}, Velocity: model.Vec2{Y: 85}}, model.PhaseCoast},
		{"ascending through deployment altitude", 3.5, simState{Position: model.Vec2{Y: 180}, Velocity: model.Vec2{Y: 40}}, model.PhaseRecovery},
		{"descending without deployment", 9, simState{Position: model.Vec2{Y: 140}, Velocity: model.Vec2{Y: -5}}, model.PhaseRecovery},
		{"back on the ground", 20, simState{Position: model.Vec2{Y: -0.2}, Velocity: model.Vec2{Y: -12}}, model.PhaseLanding},
	}
	for _, tc := range cases {
		s := tc.state
		if got := nextPhase(cfg, &s, tc.time); got != tc.want {
			t.Errorf("%s: phase = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParachuteDeploymentLatches(t *testing.T) {
	cfg := testRocket()

	s := &simState{Position: model.Vec2{Y: 160}, Velocity: model.Vec2{Y: 30}}
	if got := nextPhase(cfg, s, 4); got != model.PhaseRecovery {
		t.Fatalf("phase above deployment altitude = %v, want RECOVERY", got)
	}
	if !s.ParachuteDeployed {
		t.Fatal("parachute flag not set at deployment altitude")
	}

	// The flag stays set even if the rocket later dips below the
	// deployment altitude while still moving upward on a gust.
	s.Position.Y = 100
	s.Velocity.Y = 2
	if got := nextPhase(cfg, s, 5); got != model.PhaseRecovery {
		t.Errorf("phase after deployment = %v, want RECOVERY to persist", got)
	}
}

func TestZeroDeploymentAltitudeNeverDeploys(t *testing.T) {
	cfg := testRocket()
	cfg.Recovery.DeploymentAltitude = 0

	s := &simState{Position: model.Vec2{Y: 200}, Velocity: model.Vec2{Y: 50}}
	if got := nextPhase(cfg, s, 4); got != model.PhaseCoast {
		t.Errorf("phase with unset deployment altitude = %v, want COAST while ascending", got)
	}
	if s.ParachuteDeployed {
		t.Error("parachute deployed despite unset deployment altitude")
	}
}

func TestPhasesAreMonotonicOverAFlight(t *testing.T) {
	cfg := testRocket()
	opts := model.SimulationOptions{DetailedTelemetry: true}

	_, telemetry := Simulate(cfg, model.DefaultWeather(), opts)
	if len(telemetry) == 0 {
		t.Fatal("no telemetry recorded")
	}

	prev := telemetry[0].Phase
	for _, pt := range telemetry[1:] {
		if pt.Phase < prev {
			t.Fatalf("phase regressed from %v to %v at t=%v", prev, pt.Phase, pt.Time)
		}
		prev = pt.Phase
	}
}
