package main

import (
	"strings"
	"testing"
)

const sampleScenario = `
rocket:
  body:
    length: 0.6
    diameter: 0.048
    dryMass: 0.1
    material: cardboard
  noseCone:
    type: OGIVE
    length: 0.12
    mass: 0.01
    material: plastic
  fins:
    count: 4
    span: 0.05
    rootChord: 0.05
    tipChord: 0.03
    sweepAngle: 30
    thickness: 0.003
    material: balsa
    mass: 0.012
  engine:
    class: C
    type: SOLID
    thrust: 12
    burnTime: 2.5
    specificImpulse: 80
    propellantMass: 0.024
    totalMass: 0.038
  recovery:
    type: PARACHUTE
    deploymentAltitude: 150
    parachuteDiameter: 0.3
    parachuteCount: 1
    mass: 0.008
  launch:
    angle: 0
    rodLength: 0.9
weather:
  temperature: 20
  pressure: 101325
  humidity: 50
  windSpeed: 5
options:
  timeStep: 0.01
  maxFlightTime: 120
  detailedTelemetry: true
`

func TestLoadScenario(t *testing.T) {
	cfg, weather, opts, err := loadScenario(strings.NewReader(sampleScenario))
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}

	if cfg.Engine.Thrust != 12 || cfg.Engine.BurnTime != 2.5 {
		t.Errorf("engine not decoded: %+v", cfg.Engine)
	}
	if cfg.Body.Diameter != 0.048 {
		t.Errorf("body diameter = %v, want 0.048", cfg.Body.Diameter)
	}
	if cfg.Recovery.DeploymentAltitude != 150 {
		t.Errorf("deployment altitude = %v, want 150", cfg.Recovery.DeploymentAltitude)
	}
	if weather.Temperature != 20 || weather.WindSpeed != 5 {
		t.Errorf("weather not decoded: %+v", weather)
	}
	if opts.MaxFlightTime != 120 || !opts.DetailedTelemetry {
		t.Errorf("options not decoded: %+v", opts)
	}
}

func TestLoadScenarioDefaultsWeather(t *testing.T) {
	minimal := `
rocket:
  engine:
    thrust: 10
    burnTime: 2
`
	_, weather, opts, err := loadScenario(strings.NewReader(minimal))
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if weather.Temperature != 20 || weather.Pressure != 101325 {
		t.Errorf("missing weather block did not default: %+v", weather)
	}
	// Zero options defer to the engine defaults.
	if opts.TimeStep != 0 || opts.MaxFlightTime != 0 {
		t.Errorf("unset options should stay zero for the engine to default: %+v", opts)
	}
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	bad := `
rocket:
  engine:
    thrust: 10
    burnTiem: 2
`
	if _, _, _, err := loadScenario(strings.NewReader(bad)); err == nil {
		t.Fatal("misspelled field accepted")
	}
}

func TestLoadScenarioRejectsGarbage(t *testing.T) {
	if _, _, _, err := loadScenario(strings.NewReader("rocket: [not a map")); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}
