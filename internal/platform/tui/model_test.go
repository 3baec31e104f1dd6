package tui

import (
	"testing"

	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m, err := NewModel(config.Default(), rt, nil, nil, "")
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func TestModelTickPanicDropsFrame(t *testing.T) {
	m := newTestModel(t)

	// A simulation bug must cost one frame, never the session
	m.tick = func(core.Intent) {
		panic("simulation bug")
	}

	next, cmd := m.handleTick()
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("handleTick returned %T, expected Model", next)
	}

	if updated.quitting {
		t.Error("a panicking tick must not end the session")
	}
	if cmd == nil {
		t.Error("tick loop must stay armed after a recovered panic")
	}
	if updated.run.Phase() != m.run.Phase() {
		t.Errorf("phase changed across a dropped frame: %v -> %v", m.run.Phase(), updated.run.Phase())
	}
}

func TestModelTickPanicKeepsTicking(t *testing.T) {
	m := newTestModel(t)
	m.tick = func(core.Intent) {
		panic("simulation bug")
	}

	// Consecutive bad frames keep dropping without ending the session
	for i := 0; i < 3; i++ {
		next, cmd := m.handleTick()
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("handleTick returned %T, expected Model", next)
		}
		if m.quitting {
			t.Fatalf("frame %d: session ended after a recovered panic", i)
		}
		if cmd == nil {
			t.Fatalf("frame %d: tick loop disarmed", i)
		}
	}

	// The model still renders its last good state
	if view := m.View(); view == "" {
		t.Error("view should keep rendering after dropped frames")
	}
}

func TestModelTickAdvancesRun(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.handleTick()
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("handleTick returned %T, expected Model", next)
	}
	if cmd == nil {
		t.Error("tick loop must re-arm after a normal tick")
	}
	if updated.quitting {
		t.Error("a normal tick must not end the session")
	}
}
