package game

import (
	"math"
	"testing"

	"github.com/nilemile/nilemile/internal/config"
)

func testYetiConfig() config.YetiConfig {
	return config.YetiConfig{
		Activation:    1500,
		Fallback:      7000,
		NoSpawnZone:   600,
		Homing:        0.08,
		ContactMargin: 6,
		SpawnBehind:   300,
	}
}

func hardTier() config.TierConfig {
	return config.TierConfig{MaxSpeed: 12, HazardChance: 0.15, YetiBonus: 0.6, YetiAtThreshold: true}
}

func easyTier() config.TierConfig {
	return config.TierConfig{MaxSpeed: 9, HazardChance: 0, YetiBonus: 0.3, YetiAtThreshold: false}
}

func TestYetiInactiveBeforeThreshold(t *testing.T) {
	p := NewPursuit(testYetiConfig(), hardTier(), 10000)
	pl := &Player{Y: 1000, Speed: 8}

	p.Tick(pl)
	if p.State().Active {
		t.Error("yeti should stay inactive before the activation threshold")
	}
}

func TestYetiActivatesOnHard(t *testing.T) {
	p := NewPursuit(testYetiConfig(), hardTier(), 10000)
	pl := &Player{X: 12, Y: 1600, Speed: 8}

	p.Tick(pl)
	y := p.State()
	if !y.Active {
		t.Fatal("hard tier should activate the yeti past the base threshold")
	}
	// Spawns behind the skier, laterally aligned
	if y.X != pl.X {
		t.Errorf("yeti should spawn at the skier's lateral position, got %v", y.X)
	}
}

func TestYetiEasyWaitsForFallback(t *testing.T) {
	p := NewPursuit(testYetiConfig(), easyTier(), 10000)

	pl := &Player{Y: 1600, Speed: 8}
	p.Tick(pl)
	if p.State().Active {
		t.Fatal("easy tier should not activate at the base threshold")
	}

	// Past the fallback distance the yeti is unavoidable even on easy
	pl.Y = 7100
	p.Tick(pl)
	if !p.State().Active {
		t.Error("easy tier should activate past the fallback distance")
	}
}

func TestYetiNoSpawnNearFinish(t *testing.T) {
	cfg := testYetiConfig()
	p := NewPursuit(cfg, hardTier(), 10000)

	pl := &Player{Y: 10000 - cfg.NoSpawnZone + 1, Speed: 8}
	p.Tick(pl)
	if p.State().Active {
		t.Error("yeti should not spawn inside the final no-spawn zone")
	}
}

func TestYetiNeverDeactivates(t *testing.T) {
	p := NewPursuit(testYetiConfig(), hardTier(), 10000)
	pl := &Player{Y: 1600, Speed: 8}

	p.Tick(pl)
	if !p.State().Active {
		t.Fatal("expected activation")
	}

	// Keep the skier ahead; the yeti must remain active every tick,
	// including once the skier enters the finish approach.
	for i := 0; i < 500; i++ {
		pl.Y += 20
		p.Tick(pl)
		if !p.State().Active {
			t.Fatalf("yeti deactivated at tick %d", i)
		}
	}
}

func TestYetiChaseSpeed(t *testing.T) {
	p := NewPursuit(testYetiConfig(), hardTier(), 10000)
	pl := &Player{Y: 1600, Speed: 5}

	p.Tick(pl) // activation tick
	before := p.State().Y

	pl.Y += 50 // keep the skier out of contact
	p.Tick(pl)
	after := p.State().Y

	// Target speed is player speed plus the hard bonus: 5 + 0.6
	if math.Abs((after-before)-5.6) > 1e-9 {
		t.Errorf("yeti should advance by 5.6 per tick, got %v", after-before)
	}
}

func TestYetiHomingEases(t *testing.T) {
	cfg := testYetiConfig()
	p := NewPursuit(cfg, hardTier(), 10000)
	pl := &Player{X: 0, Y: 1600, Speed: 8}

	p.Tick(pl)

	// Move the skier far to the side; the yeti closes a fixed fraction of
	// the gap per tick rather than snapping.
	pl.X = 100
	pl.Y += 50
	p.Tick(pl)

	got := p.State().X
	want := 100 * cfg.Homing
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("yeti should close %v of the lateral gap, moved to %v", cfg.Homing, got)
	}

	// The gap keeps shrinking but is never closed in one tick
	prevGap := 100 - got
	for i := 0; i < 50; i++ {
		pl.Y += 50
		p.Tick(pl)
		gap := 100 - p.State().X
		if gap >= prevGap {
			t.Fatalf("lateral gap should shrink every tick, %v -> %v", prevGap, gap)
		}
		if gap < 0 {
			t.Fatal("homing should not overshoot the skier")
		}
		prevGap = gap
	}
}

func TestYetiCatch(t *testing.T) {
	cfg := testYetiConfig()
	p := NewPursuit(cfg, hardTier(), 10000)
	pl := &Player{X: 0, Y: 1600, Speed: 0}

	p.Tick(pl)

	// A stationary skier is run down; lateral alignment is irrelevant.
	pl.X = 500
	caught := false
	var cause string
	for i := 0; i < 1000; i++ {
		cause, caught = p.Tick(pl)
		if caught {
			break
		}
	}
	if !caught {
		t.Fatal("yeti should catch a stationary skier")
	}
	if cause != CauseYeti {
		t.Errorf("catch cause = %q, expected %q", cause, CauseYeti)
	}
	if p.State().Y <= pl.Y-cfg.ContactMargin {
		t.Error("catch should only trigger once the yeti crosses the contact margin")
	}
}
