package core

import "github.com/signalsfoundry/rocketflight-engine/model"

// testRocket is a well-behaved single-stage sport rocket: C-class motor,
// 48 mm airframe, parachute recovery. Used throughout the core tests as the
// known-good baseline; individual tests copy and tweak it.
func testRocket() model.RocketConfiguration {
	return model.RocketConfiguration{
		Body: model.BodyConfig{
			Length:        0.6,
			Diameter:      0.048,
			DryMass:       0.1,
			Material:      "cardboard",
			FinenessRatio: 12.5,
		},
		NoseCone: model.NoseConeConfig{
			Type:     "OGIVE",
			Length:   0.12,
			Mass:     0.01,
			Material: "plastic",
		},
		Fins: model.FinConfig{
			Count:      4,
			Span:       0.05,
			RootChord:  0.05,
			TipChord:   0.03,
			SweepAngle: 30,
			Thickness:  0.003,
			Material:   "balsa",
			Mass:       0.012,
		},
		Engine: model.EngineConfig{
			Class:           "C",
			Type:            "SOLID",
			Thrust:          12,
			BurnTime:        2.5,
			SpecificImpulse: 80,
			PropellantMass:  0.024,
			TotalMass:       0.038,
		},
		Recovery: model.RecoveryConfig{
			Type:               "PARACHUTE",
			DeploymentAltitude: 150,
			ParachuteDiameter:  0.3,
			ParachuteCount:     1,
			Mass:               0.008,
		},
		Launch: model.LaunchConfig{
			Angle:     0,
			RodLength: 0.9,
		},
	}
}
