package game

import (
	"math"

	"github.com/nilemile/nilemile/internal/config"
)

// Track maps distance traveled to the lateral center of the slope.
// The center follows a sinusoidal switchback curve; everything else about the
// slope (forest boundary, hazard lanes) is derived from it.
type Track struct {
	cfg config.TrackConfig
}

// NewTrack creates a track from the given geometry config.
func NewTrack(cfg config.TrackConfig) Track {
	return Track{cfg: cfg}
}

// CenterAt returns the lateral center offset of the track at distance z.
// Pure and deterministic; bounded within [-amplitude, amplitude].
func (t Track) CenterAt(z float64) float64 {
	return t.cfg.Amplitude * math.Sin(z*t.cfg.Frequency)
}

// LeftBoundAt returns the left forest boundary at distance z.
func (t Track) LeftBoundAt(z float64) float64 {
	return t.CenterAt(z) - t.cfg.HalfWidth
}

// RightBoundAt returns the right forest boundary at distance z.
func (t Track) RightBoundAt(z float64) float64 {
	return t.CenterAt(z) + t.cfg.HalfWidth
}

// HalfWidth returns the lateral distance from center to the forest boundary.
func (t Track) HalfWidth() float64 {
	return t.cfg.HalfWidth
}

// Length returns the total run distance to the finish line.
func (t Track) Length() float64 {
	return t.cfg.Length
}

// HazardLimit returns the highest distance at which obstacles may be placed.
// The final safe zone before the finish line stays clear so the run ends in a
// clean deceleration rather than a last-instant crash.
func (t Track) HazardLimit() float64 {
	return t.cfg.Length - t.cfg.SafeZone
}
