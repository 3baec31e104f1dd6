package game

import (
	"math"
	"math/rand"

	"github.com/nilemile/nilemile/internal/config"
)

// ObstacleKind categorizes a hazard.
type ObstacleKind int

const (
	KindTree ObstacleKind = iota
	KindRock
	KindStump
)

// String returns the category name used in collision causes.
func (k ObstacleKind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	case KindStump:
		return "stump"
	default:
		return "unknown"
	}
}

// Obstacle is a single hazard on or beside the track.
// Obstacles are immutable once created; width doubles as the hitbox extent.
type Obstacle struct {
	ID   int
	X    float64
	Y    float64
	Kind ObstacleKind
	W    float64
	H    float64
}

// Field owns the obstacle collection and the generation frontier.
// It appends hazards in fixed-size rows as the skier advances and drops rows
// that have fallen behind the cull window, keeping the active set bounded
// regardless of total run length.
type Field struct {
	track        Track
	cfg          config.ObstaclesConfig
	hazardChance float64
	rng          *rand.Rand
	obstacles    []Obstacle
	frontier     float64
	nextID       int
}

// NewField creates an obstacle field with an injected RNG.
// The seeded RNG makes placement reproducible for tests and replays.
func NewField(track Track, cfg config.ObstaclesConfig, hazardChance float64, rng *rand.Rand) *Field {
	return &Field{
		track:        track,
		cfg:          cfg,
		hazardChance: hazardChance,
		rng:          rng,
		obstacles:    make([]Obstacle, 0, 256),
	}
}

// Extend ensures obstacles exist for every row between the current frontier
// and toY. Already-generated rows are never regenerated and no row is skipped,
// so the frontier is monotone and the corridor gap-free. Calling Extend when
// the frontier is already at or past toY is a no-op. Generation never proceeds
// past the safe zone before the finish line.
func (f *Field) Extend(fromY, toY float64) {
	limit := math.Min(math.Max(fromY, toY), f.track.HazardLimit())
	for f.frontier < limit {
		f.generateRow(f.frontier)
		f.frontier += f.cfg.Step
	}
}

// generateRow emits the hazards for one row at distance y.
func (f *Field) generateRow(y float64) {
	rowLimit := f.track.HazardLimit()
	left := f.track.LeftBoundAt(y)
	right := f.track.RightBoundAt(y)

	// Two trees per side: a near-boundary tree and a deeper one. The double
	// layer keeps the forest reading as a continuous wall even though every
	// placement is randomized, and closes off any line around the track.
	f.emitTree(left-f.randRange(f.cfg.TreeNearMin, f.cfg.TreeNearMax), y,
		f.randRange(f.cfg.TreeSizeMin, f.cfg.TreeSizeMax), rowLimit)
	f.emitTree(left-f.randRange(f.cfg.TreeDeepMin, f.cfg.TreeDeepMax), y,
		f.cfg.TreeDeepSize, rowLimit)
	f.emitTree(right+f.randRange(f.cfg.TreeNearMin, f.cfg.TreeNearMax), y,
		f.randRange(f.cfg.TreeSizeMin, f.cfg.TreeSizeMax), rowLimit)
	f.emitTree(right+f.randRange(f.cfg.TreeDeepMin, f.cfg.TreeDeepMax), y,
		f.cfg.TreeDeepSize, rowLimit)

	// On-track hazard, gated by the tier's spawn chance. The lane share stays
	// below the full width so an alert skier always has an escape line at the
	// edges.
	if f.hazardChance > 0 && f.rng.Float64() < f.hazardChance {
		kind := KindRock
		if f.rng.Intn(2) == 1 {
			kind = KindStump
		}
		w, h := f.cfg.RockWidth, f.cfg.RockHeight
		if kind == KindStump {
			w, h = f.cfg.StumpWidth, f.cfg.StumpHeight
		}
		lane := f.track.HalfWidth() * f.cfg.HazardLaneShare
		x := f.track.CenterAt(y) + (f.rng.Float64()*2-1)*lane
		f.append(Obstacle{X: x, Y: f.jitterY(y, rowLimit), Kind: kind, W: w, H: h})
	}
}

func (f *Field) emitTree(x, y, size, rowLimit float64) {
	f.append(Obstacle{X: x, Y: f.jitterY(y, rowLimit), Kind: KindTree, W: size, H: size})
}

// jitterY spreads obstacles within the row so they do not form visible bands,
// clamped so nothing lands inside the safe zone.
func (f *Field) jitterY(y, rowLimit float64) float64 {
	return math.Min(y+f.rng.Float64()*f.cfg.Step, rowLimit)
}

func (f *Field) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + f.rng.Float64()*(max-min)
}

func (f *Field) append(o Obstacle) {
	o.ID = f.nextID
	f.nextID++
	f.obstacles = append(f.obstacles, o)
}

// Cull drops obstacles that have fallen more than the cull window behind the
// skier. With monotone forward travel they can never be reached again.
func (f *Field) Cull(playerY float64) {
	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Y > playerY-f.cfg.CullWindow {
			live = append(live, o)
		}
	}
	f.obstacles = live
}

// Obstacles returns the live obstacle collection.
// Callers must not mutate or retain the slice across ticks.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Frontier returns the highest distance for which obstacles have been generated.
func (f *Field) Frontier() float64 {
	return f.frontier
}

// Count returns the number of live obstacles.
func (f *Field) Count() int {
	return len(f.obstacles)
}
