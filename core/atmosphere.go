package core

import "math"

// celsiusToKelvin converts a pad temperature to the absolute scale.
const celsiusToKelvin = 273.15

// temperatureAt returns the absolute air temperature (K) at the given
// altitude, applying a fixed lapse rate to the pad temperature. The result
// is floored just above zero so the density and sound-speed relations stay
// finite at extreme altitudes.
func (p PhysicsConstants) temperatureAt(altitude, padTempC float64) float64 {
	t := (padTempC + celsiusToKelvin) - p.TemperatureLapse*altitude
	if t < 1 {
		t = 1
	}
	return t
}

// AirDensity returns the air density (kg/m³) at the given altitude for the
// given pad temperature (°C), using the simplified barometric relation
// rho = rho0 · (T_alt/T0)^4.256.
func (p PhysicsConstants) AirDensity(altitude, padTempC float64) float64 {
	t0 := padTempC + celsiusToKelvin
	tAlt := p.temperatureAt(altitude, padTempC)
	return p.SeaLevelDensity * math.Pow(tAlt/t0, densityExponent)
}

// SpeedOfSound returns the local speed of sound (m/s) at the given altitude
// for the given pad temperature (°C): sqrt(γ · R · T_alt).
func (p PhysicsConstants) SpeedOfSound(altitude, padTempC float64) float64 {
	tAlt := p.temperatureAt(altitude, padTempC)
	return math.Sqrt(p.HeatCapacityRatio * p.GasConstantAir * tAlt)
}

// MachNumber returns |speed| over the local speed of sound.
func (p PhysicsConstants) MachNumber(speed, altitude, padTempC float64) float64 {
	a := p.SpeedOfSound(altitude, padTempC)
	if a == 0 {
		return 0
	}
	return math.Abs(speed) / a
}

// DynamicPressure returns ½·ρ·v², the structural-load indicator tracked in
// the results summary.
func (p PhysicsConstants) DynamicPressure(speed, altitude, padTempC float64) float64 {
	return 0.5 * p.AirDensity(altitude, padTempC) * speed * speed
}
