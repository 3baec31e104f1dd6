package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nilemile/nilemile/internal/core"
	"github.com/nilemile/nilemile/internal/game"
)

// World units covered by one character cell. The slope scrolls bottom-up:
// rows above the skier show what is ahead, rows below what was passed.
const (
	unitsPerRow = 8.0
	unitsPerCol = 4.0
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorSnow:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorTree:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorRock:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorStump:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorSkier:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorYeti:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBoundary: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorHud:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Frame draws one full frame of the run into the screen buffer.
// The camera is locked to the track center at the skier's distance, so the
// switchbacks of the slope are visible as the boundary runes drift sideways.
type Frame struct {
	track game.Track
}

// NewFrame creates a frame renderer for the given track geometry.
func NewFrame(track game.Track) *Frame {
	return &Frame{track: track}
}

// Draw renders the snapshot into the screen buffer.
func (f *Frame) Draw(s *core.Screen, snap game.Snapshot) {
	s.Clear()

	switch snap.Phase {
	case game.PhaseMenu:
		f.drawMenu(s, snap)
		return
	case game.PhaseCountdown:
		f.drawSlope(s, snap)
		f.drawCountdown(s, snap)
	case game.PhasePlaying:
		f.drawSlope(s, snap)
	case game.PhaseGameOver, game.PhaseVictory:
		f.drawSlope(s, snap)
	}

	f.drawHUD(s, snap)
}

// playerRow returns the screen row the skier is drawn on. The skier sits in
// the lower third so most of the viewport shows upcoming terrain.
func (f *Frame) playerRow(s *core.Screen) int {
	return s.Height() - hudRows - 4
}

// worldToCol maps a lateral world position to a screen column for a row whose
// track center is camX.
func (f *Frame) worldToCol(s *core.Screen, x, camX float64) int {
	return s.Width()/2 + int((x-camX)/unitsPerCol)
}

func (f *Frame) drawSlope(s *core.Screen, snap game.Snapshot) {
	pRow := f.playerRow(s)
	camX := snap.TrackCenter

	// Boundaries row by row; each row samples the track at its own distance
	for row := 0; row <= s.Height()-hudRows-1; row++ {
		worldY := snap.Player.Y + float64(pRow-row)*unitsPerRow
		if worldY < 0 {
			continue
		}
		left := f.worldToCol(s, f.track.LeftBoundAt(worldY), camX)
		right := f.worldToCol(s, f.track.RightBoundAt(worldY), camX)
		s.SetCell(left, row, '|', core.ColorBoundary)
		s.SetCell(right, row, '|', core.ColorBoundary)

		// Finish line
		if worldY < f.track.Length() && worldY+unitsPerRow >= f.track.Length() {
			for x := left + 1; x < right; x++ {
				s.SetCell(x, row, '=', core.ColorHud)
			}
		}
	}

	for _, o := range snap.Obstacles {
		f.drawObstacle(s, snap, o)
	}

	if snap.Yeti.Active {
		row := pRow - int((snap.Yeti.Y-snap.Player.Y)/unitsPerRow)
		col := f.worldToCol(s, snap.Yeti.X, camX)
		s.SetCell(col, row, 'W', core.ColorYeti)
	}

	// Skier last so nothing draws over it
	glyph := 'V'
	if snap.Player.Crashed {
		glyph = '*'
	}
	s.SetCell(f.worldToCol(s, snap.Player.X, camX), pRow, glyph, core.ColorSkier)

	switch snap.Phase {
	case game.PhaseGameOver:
		s.DrawTextCentered(s.Height()/2-1, "W I P E O U T", core.ColorYeti)
		if snap.Stats.Cause != "" {
			s.DrawTextCentered(s.Height()/2, "You "+snap.Stats.Cause, core.ColorSnow)
		}
		s.DrawTextCentered(s.Height()/2+2, "r: try again   esc: menu   q: quit", core.ColorHud)
	case game.PhaseVictory:
		s.DrawTextCentered(s.Height()/2-1, "F I N I S H !", core.ColorHud)
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Time: %s", formatElapsed(snap.Stats)), core.ColorSnow)
		s.DrawTextCentered(s.Height()/2+2, "r: ski again   esc: menu   q: quit", core.ColorHud)
	}
}

func (f *Frame) drawObstacle(s *core.Screen, snap game.Snapshot, o game.ObstacleView) {
	row := f.playerRow(s) - int((o.Y-snap.Player.Y)/unitsPerRow)
	if row < 0 || row > s.Height()-hudRows-1 {
		return
	}

	var glyph rune
	var color core.Color
	switch o.Kind {
	case game.KindTree:
		glyph, color = 'Y', core.ColorTree
	case game.KindRock:
		glyph, color = 'O', core.ColorRock
	case game.KindStump:
		glyph, color = '#', core.ColorStump
	default:
		glyph, color = '?', core.ColorDefault
	}

	// Wide obstacles span multiple columns around their center
	cols := core.Max(1, int(o.W/unitsPerCol))
	center := f.worldToCol(s, o.X, snap.TrackCenter)
	for i := 0; i < cols; i++ {
		s.SetCell(center-cols/2+i, row, glyph, color)
	}
}

func (f *Frame) drawMenu(s *core.Screen, snap game.Snapshot) {
	mid := s.Height() / 2

	s.DrawTextCentered(mid-5, "N I L E   M I L E", core.ColorSkier)
	s.DrawTextCentered(mid-4, "a downhill descent", core.ColorSnow)

	easy := "  easy  "
	hard := "  hard  "
	if snap.Difficulty == "hard" {
		hard = "> hard <"
	} else {
		easy = "> easy <"
	}
	s.DrawTextCentered(mid-1, easy, core.ColorHud)
	s.DrawTextCentered(mid, hard, core.ColorHud)

	s.DrawTextCentered(mid+3, "e/1: easy   h/2: hard", core.ColorSnow)
	s.DrawTextCentered(mid+4, "enter: start   q: quit", core.ColorSnow)
	s.DrawTextCentered(mid+5, "steer with arrows or a/d", core.ColorSnow)
}

func (f *Frame) drawCountdown(s *core.Screen, snap game.Snapshot) {
	n := snap.Countdown
	if n <= 0 {
		return
	}
	s.DrawTextCentered(s.Height()/2, fmt.Sprintf("-  %d  -", n), core.ColorHud)
}

func (f *Frame) drawHUD(s *core.Screen, snap game.Snapshot) {
	y := s.Height() - hudRows
	s.DrawHLine(0, y, s.Width(), '-', core.ColorBoundary)

	hud := fmt.Sprintf(" speed %5.1f  dist %6.0f/%.0f  time %s  [%s]",
		snap.Player.Speed,
		snap.Player.Y,
		f.track.Length(),
		formatElapsed(snap.Stats),
		snap.Difficulty,
	)
	s.DrawText(0, y+1, hud, core.ColorHud)
}

func formatElapsed(stats game.Stats) string {
	total := stats.Elapsed.Seconds()
	return fmt.Sprintf("%d:%04.1f", int(total)/60, total-float64(int(total)/60*60))
}
