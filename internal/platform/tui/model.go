package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nilemile/nilemile/internal/commentary"
	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
	"github.com/nilemile/nilemile/internal/game"
	"github.com/nilemile/nilemile/internal/storage"
)

// commentaryMsg delivers an async commentary line tagged with the run
// generation it was requested for.
type commentaryMsg struct {
	generation int
	line       string
}

// Model is the Bubble Tea model driving a Nile Mile session.
type Model struct {
	run        *game.Run
	frame      *Frame
	screen     *core.Screen
	store      *storage.Store
	dispatcher *commentary.Dispatcher
	keymap     *KeyMapper
	logger     *log.Logger
	runtime    core.RuntimeConfig

	// tick advances the simulation one frame; normally Run.Tick.
	tick func(core.Intent)

	// pendingIntent is the latest steering key since the last tick; the
	// simulation consumes exactly one intent per tick.
	pendingIntent core.Intent

	commentLine string
	nameInput   textinput.Model
	entering    bool
	saved       bool
	defaultName string
	quitting    bool
}

// NewModel creates a session model. The store and dispatcher may be nil;
// saving and commentary are then skipped.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, gen commentary.Generator, name string) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	run, err := game.NewRun(cfg, rt)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 24
	input.Width = 24
	if name != "" {
		input.SetValue(name)
	}

	var dispatcher *commentary.Dispatcher
	if gen != nil {
		dispatcher = commentary.NewDispatcher(gen, 2*time.Second)
	}

	return Model{
		run:        run,
		frame:      NewFrame(game.NewTrack(cfg.Track)),
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		dispatcher: dispatcher,
		keymap:     NewKeyMapper(),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "nilemile",
		}),
		runtime:     rt,
		tick:        run.Tick,
		nameInput:   input,
		defaultName: name,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case commentaryMsg:
		// Late lines from a previous run are dropped
		if msg.generation == m.run.Generation() && msg.line != "" {
			m.commentLine = msg.line
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Name entry swallows everything except enter and quit
	if m.entering {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.saveRun()
			m.entering = false
			m.nameInput.Blur()
			return m, nil
		case "esc":
			// Skip the leaderboard for this run
			m.entering = false
			m.nameInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	cmd, quit := m.keymap.MapCommand(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.run.Phase() {
	case game.PhaseMenu:
		if d, ok := m.keymap.MapDifficulty(msg); ok {
			if err := m.run.SetDifficulty(d); err != nil {
				m.logger.Warn("difficulty change rejected", "error", err)
			}
			return m, nil
		}
		if cmd == core.CommandStart {
			m.startRun(cmd)
		}

	case game.PhasePlaying, game.PhaseCountdown:
		if cmd == core.CommandAbort {
			//nolint:errcheck // Abort is always legal outside the menu
			m.run.Handle(cmd)
			return m, nil
		}
		if intent := m.keymap.MapIntent(msg); intent != core.IntentNone {
			m.pendingIntent = intent
		}

	case game.PhaseGameOver, game.PhaseVictory:
		switch cmd {
		case core.CommandRestart:
			m.startRun(cmd)
		case core.CommandAbort:
			//nolint:errcheck
			m.run.Handle(cmd)
			m.commentLine = ""
		}
	}

	return m, nil
}

// startRun dispatches a start or restart and rekeys the commentary stream
// to the new run generation.
func (m *Model) startRun(cmd core.Command) {
	if err := m.run.Handle(cmd); err != nil {
		m.logger.Warn("command rejected", "command", cmd, "error", err)
		return
	}
	m.commentLine = ""
	m.entering = false
	m.saved = false
	if m.dispatcher != nil {
		m.dispatcher.Advance(m.run.Generation())
	}
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.run.Phase()
	m.safeTick()
	m.pendingIntent = core.IntentNone

	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}

	// Terminal entry: request commentary and, on victory, open name entry
	after := m.run.Phase()
	if before == game.PhasePlaying && after != before {
		if m.dispatcher != nil {
			gen := m.run.Generation()
			ch := m.dispatcher.Request(gen, m.run.Stats())
			cmds = append(cmds, func() tea.Msg {
				line, ok := <-ch
				if !ok {
					return commentaryMsg{generation: gen}
				}
				return commentaryMsg{generation: gen, line: line}
			})
		}

		if after == game.PhaseVictory && m.store != nil {
			m.entering = true
			m.nameInput.Focus()
			cmds = append(cmds, textinput.Blink)
		}
	}

	return m, tea.Batch(cmds...)
}

// safeTick runs one simulation tick, recovering from panics so a simulation
// bug drops the frame instead of ending the session. The run keeps showing
// its last good state and the tick loop stays armed.
func (m *Model) safeTick() {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("tick panicked, frame dropped", "panic", r, "phase", m.run.Phase())
		}
	}()
	m.tick(m.pendingIntent)
}

// saveRun persists the finished run on the leaderboard. Best-effort; a
// storage failure is logged and the session continues.
func (m *Model) saveRun() {
	if m.store == nil || m.saved {
		return
	}

	name := m.nameInput.Value()
	if name == "" {
		name = m.defaultName
	}

	stats := m.run.Stats()
	if _, err := m.store.SaveRun(name, stats.Elapsed, m.run.Difficulty()); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.saved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.run.Snapshot()
	m.frame.Draw(m.screen, snap)

	if m.commentLine != "" && (snap.Phase == game.PhaseGameOver || snap.Phase == game.PhaseVictory) {
		m.screen.DrawTextCentered(m.screen.Height()/2+4, "\""+m.commentLine+"\"", core.ColorSnow)
	}

	if m.entering {
		m.screen.DrawTextCentered(m.screen.Height()/2+6, "Record your time: "+m.nameInput.View(), core.ColorHud)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
// An empty difficulty keeps the default menu selection.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, name string, difficulty config.Difficulty) error {
	model, err := NewModel(cfg, rt, store, commentary.Local{}, name)
	if err != nil {
		return err
	}
	if difficulty != "" {
		if err := model.run.SetDifficulty(difficulty); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
