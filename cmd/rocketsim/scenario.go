package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/rocketflight-engine/model"
)

// Wire shapes for scenarios and API requests. Kept separate from the model
// package so the file format can evolve without touching the engine types.

type rocketSpec struct {
	Body     bodySpec     `yaml:"body" json:"body"`
	NoseCone noseConeSpec `yaml:"noseCone" json:"noseCone"`
	Fins     finSpec      `yaml:"fins" json:"fins"`
	Engine   engineSpec   `yaml:"engine" json:"engine"`
	Recovery recoverySpec `yaml:"recovery" json:"recovery"`
	Launch   launchSpec   `yaml:"launch" json:"launch"`
}

type bodySpec struct {
	Length        float64 `yaml:"length" json:"length"`
	Diameter      float64 `yaml:"diameter" json:"diameter"`
	DryMass       float64 `yaml:"dryMass" json:"dryMass"`
	Material      string  `yaml:"material" json:"material"`
	FinenessRatio float64 `yaml:"finenessRatio" json:"finenessRatio"`
}

type noseConeSpec struct {
	Type     string  `yaml:"type" json:"type"`
	Length   float64 `yaml:"length" json:"length"`
	Mass     float64 `yaml:"mass" json:"mass"`
	Material string  `yaml:"material" json:"material"`
}

type finSpec struct {
	Count      int     `yaml:"count" json:"count"`
	Span       float64 `yaml:"span" json:"span"`
	RootChord  float64 `yaml:"rootChord" json:"rootChord"`
	TipChord   float64 `yaml:"tipChord" json:"tipChord"`
	SweepAngle float64 `yaml:"sweepAngle" json:"sweepAngle"`
	Thickness  float64 `yaml:"thickness" json:"thickness"`
	Material   string  `yaml:"material" json:"material"`
	Mass       float64 `yaml:"mass" json:"mass"`
}

type engineSpec struct {
	Class           string  `yaml:"class" json:"class"`
	Type            string  `yaml:"type" json:"type"`
	Thrust          float64 `yaml:"thrust" json:"thrust"`
	BurnTime        float64 `yaml:"burnTime" json:"burnTime"`
	SpecificImpulse float64 `yaml:"specificImpulse" json:"specificImpulse"`
	PropellantMass  float64 `yaml:"propellantMass" json:"propellantMass"`
	TotalMass       float64 `yaml:"totalMass" json:"totalMass"`
}

type recoverySpec struct {
	Type               string  `yaml:"type" json:"type"`
	DeploymentAltitude float64 `yaml:"deploymentAltitude" json:"deploymentAltitude"`
	ParachuteDiameter  float64 `yaml:"parachuteDiameter" json:"parachuteDiameter"`
	ParachuteCount     int     `yaml:"parachuteCount" json:"parachuteCount"`
	Mass               float64 `yaml:"mass" json:"mass"`
}

type launchSpec struct {
	Angle         float64 `yaml:"angle" json:"angle"`
	RodLength     float64 `yaml:"rodLength" json:"rodLength"`
	WindSpeed     float64 `yaml:"windSpeed" json:"windSpeed"`
	WindDirection float64 `yaml:"windDirection" json:"windDirection"`
}

type weatherSpec struct {
	Temperature   float64 `yaml:"temperature" json:"temperature"`
	Pressure      float64 `yaml:"pressure" json:"pressure"`
	Humidity      float64 `yaml:"humidity" json:"humidity"`
	WindSpeed     float64 `yaml:"windSpeed" json:"windSpeed"`
	WindDirection float64 `yaml:"windDirection" json:"windDirection"`
}

type optionsSpec struct {
	TimeStep          float64 `yaml:"timeStep" json:"timeStep"`
	MaxFlightTime     float64 `yaml:"maxFlightTime" json:"maxFlightTime"`
	DetailedTelemetry bool    `yaml:"detailedTelemetry" json:"detailedTelemetry"`
}

type scenarioFile struct {
	Rocket  rocketSpec   `yaml:"rocket"`
	Weather *weatherSpec `yaml:"weather"`
	Options optionsSpec  `yaml:"options"`
}

// loadScenario reads a YAML flight scenario. A missing weather block means
// the default standard day; options fall back to the engine defaults.
func loadScenario(r io.Reader) (model.RocketConfiguration, model.WeatherConditions, model.SimulationOptions, error) {
	var sc scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return model.RocketConfiguration{}, model.WeatherConditions{}, model.SimulationOptions{},
			fmt.Errorf("decode scenario: %w", err)
	}
	return sc.Rocket.toModel(), sc.Weather.toModel(), sc.Options.toModel(), nil
}

func (s rocketSpec) toModel() model.RocketConfiguration {
	return model.RocketConfiguration{
		Body: model.BodyConfig{
			Length:        s.Body.Length,
			Diameter:      s.Body.Diameter,
			DryMass:       s.Body.DryMass,
			Material:      s.Body.Material,
			FinenessRatio: s.Body.FinenessRatio,
		},
		NoseCone: model.NoseConeConfig{
			Type:     s.NoseCone.Type,
			Length:   s.NoseCone.Length,
			Mass:     s.NoseCone.Mass,
			Material: s.NoseCone.Material,
		},
		Fins: model.FinConfig{
			Count:      s.Fins.Count,
			Span:       s.Fins.Span,
			RootChord:  s.Fins.RootChord,
			TipChord:   s.Fins.TipChord,
			SweepAngle: s.Fins.SweepAngle,
			Thickness:  s.Fins.Thickness,
			Material:   s.Fins.Material,
			Mass:       s.Fins.Mass,
		},
		Engine: model.EngineConfig{
			Class:           s.Engine.Class,
			Type:            s.Engine.Type,
			Thrust:          s.Engine.Thrust,
			BurnTime:        s.Engine.BurnTime,
			SpecificImpulse: s.Engine.SpecificImpulse,
			PropellantMass:  s.Engine.PropellantMass,
			TotalMass:       s.Engine.TotalMass,
		},
		Recovery: model.RecoveryConfig{
			Type:               s.Recovery.Type,
			DeploymentAltitude: s.Recovery.DeploymentAltitude,
			ParachuteDiameter:  s.Recovery.ParachuteDiameter,
			ParachuteCount:     s.Recovery.ParachuteCount,
			Mass:               s.Recovery.Mass,
		},
		Launch: model.LaunchConfig{
			Angle:         s.Launch.Angle,
			RodLength:     s.Launch.RodLength,
			WindSpeed:     s.Launch.WindSpeed,
			WindDirection: s.Launch.WindDirection,
		},
	}
}

func (w *weatherSpec) toModel() model.WeatherConditions {
	if w == nil {
		return model.DefaultWeather()
	}
	return model.WeatherConditions{
		Temperature:   w.Temperature,
		Pressure:      w.Pressure,
		Humidity:      w.Humidity,
		WindSpeed:     w.WindSpeed,
		WindDirection: w.WindDirection,
	}
}

func (o optionsSpec) toModel() model.SimulationOptions {
	return model.SimulationOptions{
		TimeStep:          o.TimeStep,
		MaxFlightTime:     o.MaxFlightTime,
		DetailedTelemetry: o.DetailedTelemetry,
	}
}
