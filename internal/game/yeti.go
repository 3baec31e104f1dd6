package game

import "github.com/nilemile/nilemile/internal/config"

// CauseYeti is the fixed termination cause for a yeti catch.
const CauseYeti = "caught by the yeti"

// Yeti is the pursuit agent's state. Once active it stays active for the
// remainder of the run.
type Yeti struct {
	Active bool
	X      float64
	Y      float64
	Speed  float64
}

// Pursuit drives the yeti: activation, chase, and the catch test.
type Pursuit struct {
	cfg         config.YetiConfig
	tier        config.TierConfig
	trackLength float64
	yeti        Yeti
}

// NewPursuit creates the pursuit controller for one run.
func NewPursuit(cfg config.YetiConfig, tier config.TierConfig, trackLength float64) *Pursuit {
	return &Pursuit{cfg: cfg, tier: tier, trackLength: trackLength}
}

// Tick advances the yeti one step and reports a catch.
//
// While active: the yeti targets the skier's speed plus the tier's bonus,
// advances by that speed, and eases laterally toward the skier by a fixed
// fraction of the gap per tick. The catch test is longitudinal only - the
// yeti is a hard boundary behind the skier regardless of lateral alignment.
func (p *Pursuit) Tick(pl *Player) (string, bool) {
	if !p.yeti.Active {
		p.maybeActivate(pl)
		if !p.yeti.Active {
			return "", false
		}
	}

	p.yeti.Speed = pl.Speed + p.tier.YetiBonus
	p.yeti.Y += p.yeti.Speed
	p.yeti.X += (pl.X - p.yeti.X) * p.cfg.Homing

	if p.yeti.Y > pl.Y-p.cfg.ContactMargin {
		return CauseYeti, true
	}
	return "", false
}

// maybeActivate checks the activation window. The easy tier only activates
// past the far fallback distance; the hard tier activates at the base
// threshold. Neither spawns inside the final no-spawn zone.
func (p *Pursuit) maybeActivate(pl *Player) {
	if pl.Y <= p.cfg.Activation {
		return
	}
	if pl.Y >= p.trackLength-p.cfg.NoSpawnZone {
		return
	}
	if !p.tier.YetiAtThreshold && pl.Y <= p.cfg.Fallback {
		return
	}

	p.yeti.Active = true
	p.yeti.X = pl.X
	p.yeti.Y = pl.Y - p.cfg.SpawnBehind
	p.yeti.Speed = pl.Speed
}

// State returns a copy of the yeti's state.
func (p *Pursuit) State() Yeti {
	return p.yeti
}
