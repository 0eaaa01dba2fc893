package model

import "math"

// Vec2 is a planar vector: X is downrange displacement, Y is altitude.
// The flight model is 2D; a cross-range axis is deliberately not carried.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Magnitude returns the Euclidean norm of the vector.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// TrajectoryPoint is one sampled instant of a flight. Points are recorded
// in strictly increasing time order and are immutable once recorded.
type TrajectoryPoint struct {
	Time            float64     `json:"time"`
	Position        Vec2        `json:"position"`
	Velocity        Vec2        `json:"velocity"`
	Acceleration    Vec2        `json:"acceleration"`
	Mass            float64     `json:"mass"`
	Thrust          float64     `json:"thrust"`
	Drag            float64     `json:"drag"`
	Mach            float64     `json:"mach"`
	Altitude        float64     `json:"altitude"`
	Phase           FlightPhase `json:"phase"`
	DynamicPressure float64     `json:"dynamicPressure"`
}
