// Package commentary produces a one-line remark about a finished run. Remarks
// are generated asynchronously so a slow generator never stalls the render
// loop; results are keyed by run generation and silently dropped when the
// player has already started a new run.
package commentary

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/nilemile/nilemile/internal/game"
)

// DefaultLine is shown whenever generation fails or times out.
const DefaultLine = "What a run!"

// Generator produces a commentary line for a finished run.
type Generator interface {
	Comment(ctx context.Context, stats game.Stats) (string, error)
}

// Local is a built-in generator with canned lines per ending. Selection is
// deterministic in the run stats, so the same run always gets the same line.
type Local struct{}

var (
	yetiLines = []string{
		"The yeti sends its regards.",
		"You can't outrun the mountain's landlord.",
		"Caught! The yeti's cardio is undefeated.",
	}
	treeLines = []string{
		"That tree has been there for eighty years. You had one job.",
		"The forest always wins.",
		"Bark beats skier, every time.",
	}
	rockLines = []string{
		"Geology: 1, skier: 0.",
		"That rock isn't going anywhere. You, however, stopped abruptly.",
	}
	stumpLines = []string{
		"Low profile, high consequences.",
		"A stump. Of all things, a stump.",
	}
	crashLines = []string{
		"The mountain claims another.",
		"Gravity remains undefeated.",
	}
	victoryLines = []string{
		"Clean run! The yeti never stood a chance.",
		"A full mile of Nile, conquered.",
		"Textbook descent. Frame it.",
	}
)

// Comment picks a line matching the run's ending.
func (Local) Comment(_ context.Context, stats game.Stats) (string, error) {
	lines := linesFor(stats.Cause)
	return lines[int(stats.Distance)%len(lines)], nil
}

func linesFor(cause string) []string {
	switch {
	case cause == "":
		return victoryLines
	case strings.Contains(cause, "yeti"):
		return yetiLines
	case strings.Contains(cause, "tree"):
		return treeLines
	case strings.Contains(cause, "rock"):
		return rockLines
	case strings.Contains(cause, "stump"):
		return stumpLines
	default:
		return crashLines
	}
}

// Dispatcher runs a Generator off the simulation loop. Each request carries
// the run generation it was made for; Advance invalidates all outstanding
// requests from earlier generations.
type Dispatcher struct {
	gen     Generator
	timeout time.Duration

	mu         sync.Mutex
	generation int
}

// NewDispatcher creates a dispatcher around the given generator.
// A non-positive timeout falls back to two seconds.
func NewDispatcher(gen Generator, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Dispatcher{gen: gen, timeout: timeout}
}

// Advance marks a new run generation as current. Results for any earlier
// generation will be discarded on delivery.
func (d *Dispatcher) Advance(generation int) {
	d.mu.Lock()
	d.generation = generation
	d.mu.Unlock()
}

// Request generates a line for the given run in the background. The returned
// channel delivers at most one line and is then closed; it is closed without
// a value when a newer run superseded the request. Generator errors and
// timeouts deliver DefaultLine instead of failing.
func (d *Dispatcher) Request(generation int, stats game.Stats) <-chan string {
	out := make(chan string, 1)

	go func() {
		defer close(out)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		line, err := d.gen.Comment(ctx, stats)
		if err != nil || strings.TrimSpace(line) == "" {
			line = DefaultLine
		}

		d.mu.Lock()
		current := d.generation
		d.mu.Unlock()
		if generation != current {
			return
		}
		out <- line
	}()

	return out
}
