package game

import (
	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
)

// PlayerPhase tags the skier's motion mode within a run.
type PlayerPhase int

const (
	// PhaseSkiing is normal downhill motion under player control.
	PhaseSkiing PlayerPhase = iota
	// PhaseCrashed ends all motion; set after a collision or a yeti catch.
	PhaseCrashed
	// PhaseCoasting is the deceleration-only mode past the finish line.
	PhaseCoasting
)

// Player is the skier's mutable state, updated once per tick.
type Player struct {
	X     float64 // Lateral position
	Y     float64 // Distance traveled; monotonically non-decreasing while playing
	Speed float64
	Steer float64 // Steering direction within [-MaxSteer, MaxSteer]
	Phase PlayerPhase
}

// Physics integrates the skier's motion from directional intent.
type Physics struct {
	cfg      config.PhysicsConfig
	maxSpeed float64
	finishY  float64
}

// NewPhysics creates the integrator for one run. The max speed comes from the
// difficulty tier and is fixed for the run's duration.
func NewPhysics(cfg config.PhysicsConfig, maxSpeed, finishY float64) Physics {
	return Physics{cfg: cfg, maxSpeed: maxSpeed, finishY: finishY}
}

// Tick advances the skier by one simulation step.
func (p Physics) Tick(pl *Player, intent core.Intent) {
	switch pl.Phase {
	case PhaseCrashed:
		return
	case PhaseCoasting:
		p.coastTick(pl, intent)
	default:
		p.skiTick(pl, intent)
	}
}

func (p Physics) skiTick(pl *Player, intent core.Intent) {
	if pl.Speed < p.maxSpeed {
		pl.Speed += p.cfg.Acceleration
		if pl.Speed > p.maxSpeed {
			pl.Speed = p.maxSpeed
		}
	}

	p.steer(pl, intent, p.cfg.TurnIncrement)
	p.integrate(pl)

	if pl.Y >= p.finishY {
		pl.Phase = PhaseCoasting
	}
}

// coastTick is the deceleration-only mode past the finish line: speed decays
// every tick and steering authority is reduced but not eliminated.
func (p Physics) coastTick(pl *Player, intent core.Intent) {
	pl.Speed *= p.cfg.FinishDecay
	if pl.Speed < p.cfg.StopThreshold {
		pl.Speed = 0
	}

	p.steer(pl, intent, p.cfg.TurnIncrement*0.5)
	p.integrate(pl)
}

func (p Physics) steer(pl *Player, intent core.Intent, increment float64) {
	switch intent {
	case core.IntentLeft:
		pl.Steer -= increment
		pl.Speed -= p.cfg.TurnPenalty // turning costs speed
	case core.IntentRight:
		pl.Steer += increment
		pl.Speed -= p.cfg.TurnPenalty
	default:
		pl.Steer *= p.cfg.SteerDamping
	}

	pl.Steer = core.ClampF(pl.Steer, -p.cfg.MaxSteer, p.cfg.MaxSteer)
	if pl.Speed < 0 {
		pl.Speed = 0
	}
}

func (p Physics) integrate(pl *Player) {
	pl.X += pl.Steer * p.cfg.LateralSensitivity
	pl.Y += pl.Speed
}

// Stopped reports whether the skier has come to rest past the finish line.
func (pl *Player) Stopped() bool {
	return pl.Phase == PhaseCoasting && pl.Speed == 0
}

// DisplaySpeed converts internal speed units to the HUD km/h figure.
func (p Physics) DisplaySpeed(pl *Player) float64 {
	return pl.Speed * p.cfg.DisplaySpeedFactor
}
