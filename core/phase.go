package core

import "github.com/signalsfoundry/rocketflight-engine/model"

// nextPhase is the total transition function of the flight state machine,
// evaluated once per step. The progression is strictly one-way:
//
//	PRELAUNCH → BOOST → COAST → RECOVERY → LANDING
//
// The parachute flag latches here: the first step at or above the
// configured deployment altitude sets it, and it is never cleared. Once the
// rocket is past burnout it is in RECOVERY whenever the parachute is out or
// it is descending, and in COAST otherwise. Touchdown requires descent:
// sitting on the pad at Y=0 during ignition is not a landing.
func nextPhase(cfg model.RocketConfiguration, s *simState, t float64) model.FlightPhase {
	if s.Position.Y <= 0 && s.Velocity.Y < 0 {
		return model.PhaseLanding
	}
	if t == 0 {
		return model.PhasePreLaunch
	}
	if t <= cfg.Engine.BurnTime {
		return model.PhaseBoost
	}
	if !s.ParachuteDeployed && cfg.Recovery.DeploymentAltitude > 0 && s.Position.Y >= cfg.Recovery.DeploymentAltitude {
		s.ParachuteDeployed = true
	}
	if s.ParachuteDeployed || s.Velocity.Y <= 0 {
		return model.PhaseRecovery
	}
	return model.PhaseCoast
}
