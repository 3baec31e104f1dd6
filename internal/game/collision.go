package game

import (
	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
)

// CheckCollision tests the skier against every live obstacle and returns the
// termination cause for the first hit.
//
// The longitudinal test is an asymmetric band around the skier: a small
// tolerance behind and a larger one ahead, modeling the skier's visual extent.
// The lateral test requires the skier within half the obstacle's width.
// Obstacles are checked in insertion order and the first match wins; when
// hazards overlap the hitbox the reported cause follows generation order.
func CheckCollision(pl *Player, obstacles []Obstacle, cfg config.CollisionConfig) (string, bool) {
	for _, o := range obstacles {
		dy := o.Y - pl.Y
		if dy < -cfg.BehindTolerance || dy > cfg.AheadTolerance {
			continue
		}
		if core.AbsF(o.X-pl.X) < o.W/2 {
			return "hit a " + o.Kind.String(), true
		}
	}
	return "", false
}
