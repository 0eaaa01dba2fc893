package model

import "math"

// RocketConfiguration is the complete physical description of a rocket as
// supplied by the caller. It is read-only for the lifetime of a simulation;
// the engine never mutates it.
type RocketConfiguration struct {
	Body     BodyConfig
	NoseCone NoseConeConfig
	Fins     FinConfig
	Engine   EngineConfig
	Recovery RecoveryConfig
	Launch   LaunchConfig
}

// BodyConfig describes the airframe tube.
type BodyConfig struct {
	Length        float64 // m
	Diameter      float64 // m
	DryMass       float64 // kg, airframe only (no nose, fins, engine, recovery)
	Material      string
	FinenessRatio float64 // length/diameter, informational
}

// NoseConeConfig describes the nose cone.
type NoseConeConfig struct {
	Type     string  // e.g. "OGIVE", "CONICAL", "PARABOLIC"
	Length   float64 // m
	Mass     float64 // kg
	Material string
}

// FinConfig describes the fin set as a whole.
type FinConfig struct {
	Count      int
	Span       float64 // m, root-to-tip
	RootChord  float64 // m
	TipChord   float64 // m
	SweepAngle float64 // degrees
	Thickness  float64 // m
	Material   string
	Mass       float64 // kg, all fins combined
}

// EngineConfig describes the motor. Class is the conventional letter
// designation ("A" through "N") used for minimum-airframe checks.
type EngineConfig struct {
	Class           string
	Type            string  // e.g. "SOLID"
	Thrust          float64 // N, treated as constant over the burn
	BurnTime        float64 // s
	SpecificImpulse float64 // s
	PropellantMass  float64 // kg
	TotalMass       float64 // kg, casing + propellant
}

// RecoveryConfig describes the recovery system.
type RecoveryConfig struct {
	Type               string  // e.g. "PARACHUTE", "STREAMER", "TUMBLE"
	DeploymentAltitude float64 // m AGL
	ParachuteDiameter  float64 // m, zero when not a parachute
	ParachuteCount     int
	Mass               float64 // kg
}

// LaunchConfig describes the pad setup.
type LaunchConfig struct {
	Angle         float64 // degrees from vertical
	RodLength     float64 // m
	WindSpeed     float64 // m/s, overrides weather when > 0
	WindDirection float64 // degrees
}

// TotalMass returns the liftoff mass: airframe, nose cone, fins, loaded
// engine, and recovery system.
func (c RocketConfiguration) TotalMass() float64 {
	return c.Body.DryMass + c.NoseCone.Mass + c.Fins.Mass + c.Engine.TotalMass + c.Recovery.Mass
}

// DryMass returns the burnout mass: TotalMass less the propellant.
func (c RocketConfiguration) DryMass() float64 {
	return c.TotalMass() - c.Engine.PropellantMass
}

// ReferenceArea returns the frontal cross-section used for drag, π·(d/2)².
func (c RocketConfiguration) ReferenceArea() float64 {
	r := c.Body.Diameter / 2
	return math.Pi * r * r
}

// PlanformArea returns the combined planform area of all fins,
// approximating each fin as a trapezoid.
func (f FinConfig) PlanformArea() float64 {
	return float64(f.Count) * 0.5 * (f.RootChord + f.TipChord) * f.Span
}
