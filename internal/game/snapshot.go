package game

import "github.com/nilemile/nilemile/internal/config"

// PlayerView is the render-ready skier state.
type PlayerView struct {
	X       float64
	Y       float64
	Steer   float64
	Speed   float64 // Display speed
	Crashed bool
}

// ObstacleView is the render-ready state of one live obstacle.
type ObstacleView struct {
	ID   int
	X    float64
	Y    float64
	Kind ObstacleKind
	W    float64
	H    float64
}

// YetiView is the render-ready pursuit agent state.
type YetiView struct {
	Active bool
	X      float64
	Y      float64
}

// Snapshot captures everything a presentation layer needs for one frame.
// Taken at tick boundaries only; never reflects a mid-tick state.
type Snapshot struct {
	Phase       Phase
	Difficulty  config.Difficulty
	Countdown   int
	Player      PlayerView
	Obstacles   []ObstacleView
	Yeti        YetiView
	TrackCenter float64 // Track center offset at the skier's distance
	TrackLeft   float64 // Left forest boundary at the skier's distance
	TrackRight  float64 // Right forest boundary at the skier's distance
	Stats       Stats
}

// Snapshot returns the current render-ready state.
func (r *Run) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      r.phase,
		Difficulty: r.difficulty,
		Countdown:  r.countdown,
		Stats:      r.stats,
	}

	// Before the first run starts there is no per-run state to report.
	if r.field == nil {
		return snap
	}

	snap.Player = PlayerView{
		X:       r.player.X,
		Y:       r.player.Y,
		Steer:   r.player.Steer,
		Speed:   r.physics.DisplaySpeed(&r.player),
		Crashed: r.player.Phase == PhaseCrashed,
	}

	// The run clock is frozen into stats only at terminal entry; while
	// playing the snapshot carries the live clock for display.
	if r.phase == PhasePlaying {
		snap.Stats.Elapsed = r.elapsed()
	}
	snap.TrackCenter = r.track.CenterAt(r.player.Y)
	snap.TrackLeft = r.track.LeftBoundAt(r.player.Y)
	snap.TrackRight = r.track.RightBoundAt(r.player.Y)

	obstacles := r.field.Obstacles()
	snap.Obstacles = make([]ObstacleView, len(obstacles))
	for i, o := range obstacles {
		snap.Obstacles[i] = ObstacleView{ID: o.ID, X: o.X, Y: o.Y, Kind: o.Kind, W: o.W, H: o.H}
	}

	yeti := r.pursuit.State()
	snap.Yeti = YetiView{Active: yeti.Active, X: yeti.X, Y: yeti.Y}

	return snap
}
