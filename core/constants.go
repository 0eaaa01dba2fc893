package core

// PhysicsConstants is the single table of physical constants and empirical
// coefficients the engine consumes. Everything that was a scattered magic
// number in earlier iterations lives here so tests can substitute an
// alternate table (e.g. a different drag regime) without touching the
// stepping code.
type PhysicsConstants struct {
	Gravity float64 // m/s²

	// Atmosphere.
	SeaLevelDensity    float64 // kg/m³
	TemperatureLapse   float64 // K/m
	GasConstantAir     float64 // J/(kg·K)
	HeatCapacityRatio  float64 // γ for dry air
	SeaLevelSoundSpeed float64 // m/s, anomaly threshold only

	// Coarse two-regime drag model. Not CFD: one coefficient under power,
	// one for everything after burnout.
	BoostDragCoeff float64
	CoastDragCoeff float64

	// Parachute canopy drag coefficient for descent-rate checks.
	ParachuteDragCoeff float64

	// Fraction of wind speed coupled into horizontal acceleration. The wind
	// model is a perturbation, not a relative-wind drag calculation.
	WindCoupling float64

	// Anomaly thresholds.
	HighAccelThreshold float64 // m/s²
}

// DefaultPhysics returns the production constants table.
func DefaultPhysics() PhysicsConstants {
	return PhysicsConstants{
		Gravity:            9.80665,
		SeaLevelDensity:    1.225,
		TemperatureLapse:   0.0065,
		GasConstantAir:     287.05,
		HeatCapacityRatio:  1.4,
		SeaLevelSoundSpeed: 343,
		BoostDragCoeff:     0.75,
		CoastDragCoeff:     0.45,
		ParachuteDragCoeff: 1.3,
		WindCoupling:       0.05,
		HighAccelThreshold: 300,
	}
}

// densityExponent is the exponent of the simplified barometric relation
// rho = rho0 · (T_alt/T0)^densityExponent. It is knowingly a rough
// approximation of the standard atmosphere; changing it changes every
// simulated altitude, so it stays fixed.
const densityExponent = 4.256

// minEngineDiameter maps an engine class letter to the smallest airframe
// diameter (m) that can physically hold a motor of that class. Classes up
// to C are 18 mm motors, D–E 24 mm, F–G 29 mm, H–I 38 mm, J–K 54 mm,
// L–M 75 mm, N 98 mm.
var minEngineDiameter = map[string]float64{
	"A": 0.018,
	"B": 0.018,
	"C": 0.018,
	"D": 0.024,
	"E": 0.024,
	"F": 0.029,
	"G": 0.029,
	"H": 0.038,
	"I": 0.038,
	"J": 0.054,
	"K": 0.054,
	"L": 0.075,
	"M": 0.075,
	"N": 0.098,
}
