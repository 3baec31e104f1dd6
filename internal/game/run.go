// Package game implements the Nile Mile simulation core: track geometry,
// procedural obstacle generation, skier physics, yeti pursuit, collision
// detection, and the run state machine. It contains pure single-threaded
// logic with no I/O; the platform layer drives it one tick per frame.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
)

// Phase is the run's top-level state. Exactly one is active at a time and
// only PhasePlaying advances simulation state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseGameOver
	PhaseVictory
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// allowedTransitions is the single source of truth for phase changes.
// Every transition goes through Run.transition, which validates against it.
var allowedTransitions = map[Phase]map[Phase]bool{
	PhaseMenu:      {PhaseCountdown: true},
	PhaseCountdown: {PhasePlaying: true, PhaseMenu: true},
	PhasePlaying:   {PhaseGameOver: true, PhaseVictory: true, PhaseMenu: true},
	PhaseGameOver:  {PhaseCountdown: true, PhaseMenu: true},
	PhaseVictory:   {PhaseCountdown: true, PhaseMenu: true},
}

// Run owns all simulation state and orchestrates the sub-systems.
// All mutation happens inside Tick or Handle; callers on the same goroutine
// read state through snapshots taken at tick boundaries.
type Run struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	difficulty config.Difficulty
	tier       config.TierConfig

	phase   Phase
	track   Track
	player  Player
	physics Physics
	field   *Field
	pursuit *Pursuit
	stats   Stats

	// generation counts fresh runs; async collaborators tag their requests
	// with it so late results from a previous run can be discarded.
	generation int

	countdown      int
	countdownTicks int
	playTicks      int
}

// NewRun validates the configuration and creates a run in the menu phase.
// Config validation is the fail-fast gate: a bad config is rejected here,
// never mid-run.
func NewRun(cfg config.Config, rt core.RuntimeConfig) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rt.TickRate <= 0 {
		return nil, fmt.Errorf("game: tick rate must be positive, got %d", rt.TickRate)
	}

	r := &Run{
		cfg:        cfg,
		runtime:    rt,
		difficulty: config.DifficultyEasy,
		track:      NewTrack(cfg.Track),
		phase:      PhaseMenu,
	}
	r.tier = cfg.Tier(r.difficulty)
	return r, nil
}

// SetDifficulty selects the tier for the next run.
// Only valid in the menu; difficulty is fixed once a run starts.
func (r *Run) SetDifficulty(d config.Difficulty) error {
	if r.phase != PhaseMenu {
		return fmt.Errorf("game: difficulty can only be changed in the menu, current phase %s", r.phase)
	}
	r.difficulty = d
	r.tier = r.cfg.Tier(d)
	return nil
}

// Handle processes a control command, driving phase transitions.
// Invalid commands for the current phase return an error and change nothing.
func (r *Run) Handle(cmd core.Command) error {
	switch cmd {
	case core.CommandStart:
		if r.phase != PhaseMenu {
			return fmt.Errorf("game: start is only valid in the menu, current phase %s", r.phase)
		}
		return r.transition(PhaseCountdown)
	case core.CommandRestart:
		if r.phase != PhaseGameOver && r.phase != PhaseVictory {
			return fmt.Errorf("game: restart is only valid after a run ends, current phase %s", r.phase)
		}
		return r.transition(PhaseCountdown)
	case core.CommandAbort:
		if r.phase == PhaseMenu {
			return nil
		}
		return r.transition(PhaseMenu)
	default:
		return nil
	}
}

// transition validates and applies a phase change.
func (r *Run) transition(to Phase) error {
	if !allowedTransitions[r.phase][to] {
		return fmt.Errorf("game: invalid transition %s -> %s", r.phase, to)
	}

	r.phase = to
	switch to {
	case PhaseCountdown:
		r.resetRun()
	case PhaseGameOver, PhaseVictory:
		r.freezeStats()
	}
	return nil
}

// resetRun builds fresh per-run state. The RNG seed is derived from the base
// seed and the generation counter so every restart gets a fresh but still
// reproducible obstacle field.
func (r *Run) resetRun() {
	r.generation++

	seed := r.runtime.Seed + int64(r.generation)
	rng := rand.New(rand.NewSource(seed))

	r.player = Player{}
	r.physics = NewPhysics(r.cfg.Physics, r.tier.MaxSpeed, r.track.Length())
	r.field = NewField(r.track, r.cfg.Obstacles, r.tier.HazardChance, rng)
	r.pursuit = NewPursuit(r.cfg.Yeti, r.tier, r.track.Length())
	r.stats = Stats{}
	r.countdown = r.cfg.Run.CountdownSeconds
	r.countdownTicks = 0
	r.playTicks = 0

	r.field.Extend(0, r.cfg.Obstacles.GenerateAhead)
}

// freezeStats fixes the statistics from current player state at terminal entry.
func (r *Run) freezeStats() {
	r.stats.Distance = r.player.Y
	r.stats.Score = int(r.player.Y * r.cfg.Run.ScorePerUnit)
	r.stats.Elapsed = r.elapsed()
}

func (r *Run) elapsed() time.Duration {
	return time.Duration(r.playTicks) * time.Second / time.Duration(r.runtime.TickRate)
}

// Tick advances the simulation by one frame. Safe to call in any phase;
// only COUNTDOWN and PLAYING mutate state. It performs no I/O and never
// blocks; the platform driver calls it exactly once per frame boundary.
func (r *Run) Tick(intent core.Intent) {
	switch r.phase {
	case PhaseCountdown:
		r.tickCountdown()
	case PhasePlaying:
		r.tickPlaying(intent)
	}
}

// tickCountdown decrements the countdown once per second of ticks.
// Simulation is frozen until it expires.
func (r *Run) tickCountdown() {
	if r.countdown <= 0 {
		// transition into PLAYING is always legal from COUNTDOWN
		_ = r.transition(PhasePlaying)
		return
	}
	r.countdownTicks++
	if r.countdownTicks >= r.runtime.TickRate {
		r.countdownTicks = 0
		r.countdown--
		if r.countdown <= 0 {
			_ = r.transition(PhasePlaying)
		}
	}
}

// tickPlaying runs one full simulation step: physics, generation, collision
// and cull, pursuit, then terminal observation.
func (r *Run) tickPlaying(intent core.Intent) {
	r.playTicks++

	r.physics.Tick(&r.player, intent)

	r.stats.Distance = r.player.Y
	r.stats.Score = int(r.player.Y * r.cfg.Run.ScorePerUnit)
	r.stats.ObserveSpeed(r.physics.DisplaySpeed(&r.player))

	r.field.Extend(r.player.Y, r.player.Y+r.cfg.Obstacles.GenerateAhead)

	if cause, hit := CheckCollision(&r.player, r.field.Obstacles(), r.cfg.Collision); hit {
		r.crash(cause)
		return
	}
	r.field.Cull(r.player.Y)

	if cause, caught := r.pursuit.Tick(&r.player); caught {
		r.crash(cause)
		return
	}

	if r.player.Stopped() {
		_ = r.transition(PhaseVictory)
	}
}

func (r *Run) crash(cause string) {
	r.player.Phase = PhaseCrashed
	r.stats.Cause = cause
	_ = r.transition(PhaseGameOver)
}

// Phase returns the current run phase.
func (r *Run) Phase() Phase {
	return r.phase
}

// Difficulty returns the tier selected for the current run.
func (r *Run) Difficulty() config.Difficulty {
	return r.difficulty
}

// Generation returns the fresh-run counter, used to key async collaborators.
func (r *Run) Generation() int {
	return r.generation
}

// Countdown returns the remaining countdown value for display.
func (r *Run) Countdown() int {
	return r.countdown
}

// Stats returns a copy of the run statistics. During PLAYING this is a
// read-mostly snapshot taken at a tick boundary; after a terminal transition
// it is frozen.
func (r *Run) Stats() Stats {
	return r.stats
}

// TrackLength returns the configured run distance.
func (r *Run) TrackLength() float64 {
	return r.track.Length()
}
